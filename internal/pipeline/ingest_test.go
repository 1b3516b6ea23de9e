package pipeline

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabdeck/internal/domain"
	"github.com/heartmarshall/vocabdeck/internal/refdata"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRefs() *refdata.Refs {
	return &refdata.Refs{
		StopWords:  map[string]bool{"the": true, "be": true},
		KnownWords: map[string]bool{"dog": true},
		Levels: map[string]refdata.LevelInfo{
			"ubiquitous": {Level: domain.LevelC1, PartOfSpeech: "adjective"},
			"hope":       {Level: domain.LevelA2, PartOfSpeech: "verb"},
		},
		Frequency: map[string]float64{
			"ubiquitous": 2.8,
			"hope":       5.3,
		},
	}
}

func TestRunBasicFlow(t *testing.T) {
	ing := NewIngestor(discardLogger(), testRefs(), nil)

	raw := []domain.RawWord{
		{Word: "Ubiquitous", Count: 1, Example: "It was ubiquitous."},
		{Word: "the", Count: 9},
		{Word: "hoped", Count: 2},
		{Word: "dogs", Count: 1},
	}

	entries, result := ing.Run(raw)

	require.Len(t, entries, 2)
	assert.Equal(t, 2, result.Kept)
	assert.Equal(t, 1, result.StopWords)
	assert.Equal(t, 1, result.Known) // dogs → dog is known

	ub := entries[0]
	assert.Equal(t, "ubiquitous", ub.Word)
	assert.Equal(t, "ubiquitous", ub.Lemma)
	assert.Equal(t, domain.LevelC1, ub.Level)
	assert.Equal(t, "adjective", ub.PartOfSpeech)
	assert.InDelta(t, 2.8, ub.FrequencyScore, 1e-9)
	assert.Equal(t, domain.Tier1, ub.Tier) // C1 + rare

	hope := entries[1]
	assert.Equal(t, "hope", hope.Lemma)
	assert.Equal(t, domain.LevelA2, hope.Level)
	assert.Equal(t, domain.Tier3, hope.Tier) // common, few lookups
}

func TestRunDefaultsForUnknownWords(t *testing.T) {
	ing := NewIngestor(discardLogger(), testRefs(), nil)

	entries, result := ing.Run([]domain.RawWord{{Word: "perspicacious", Count: 1}})

	require.Equal(t, 1, result.Kept)
	e := entries[0]
	assert.Equal(t, domain.DefaultLevel, e.Level)
	assert.InDelta(t, 3.5, e.FrequencyScore, 1e-9)
	assert.Equal(t, domain.Tier1, e.Tier) // B2 default + sub-4 default score
}

func TestRunDeduplicatesByLemma(t *testing.T) {
	ing := NewIngestor(discardLogger(), testRefs(), nil)

	raw := []domain.RawWord{
		{Word: "hoped", Count: 1, Example: "first"},
		{Word: "hoping", Count: 4, Example: "second"},
		{Word: "hope", Count: 2, Example: "third"},
	}

	entries, result := ing.Run(raw)

	require.Len(t, entries, 1)
	assert.Equal(t, 2, result.Duplicates)
	// First-seen wins.
	assert.Equal(t, "hoped", entries[0].Word)
	assert.Equal(t, "first", entries[0].Example)
}

func TestRunIdempotent(t *testing.T) {
	raw := []domain.RawWord{
		{Word: "Ubiquitous", Count: 1},
		{Word: "hoped", Count: 2},
		{Word: "perspicacious", Count: 1},
		{Word: "hoping", Count: 1},
	}

	first, firstResult := NewIngestor(discardLogger(), testRefs(), nil).Run(raw)
	second, secondResult := NewIngestor(discardLogger(), testRefs(), nil).Run(raw)

	assert.Equal(t, first, second)
	assert.Equal(t, firstResult, secondResult)
}

func TestRunSkipsEmptyWords(t *testing.T) {
	ing := NewIngestor(discardLogger(), testRefs(), nil)
	entries, result := ing.Run([]domain.RawWord{{Word: "   "}, {Word: ""}})
	assert.Empty(t, entries)
	assert.Equal(t, 2, result.Empty)
}

func TestAuditRecordsExclusions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	audit, err := OpenAudit(path)
	require.NoError(t, err)

	ing := NewIngestor(discardLogger(), testRefs(), audit)
	ing.Run([]domain.RawWord{
		{Word: "the"},
		{Word: "hoped"},
		{Word: "hoping"},
		{Word: "dogs"},
	})
	require.NoError(t, audit.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "stopword")
	assert.Contains(t, lines[1], "duplicate")
	assert.Contains(t, lines[2], "known")
}

func TestNilAuditIsSafe(t *testing.T) {
	var audit *Audit
	audit.Record("word", "reason") // must not panic
	require.NoError(t, audit.Close())
}

func TestArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean_words.json")
	entries := []domain.CleanEntry{
		{Word: "ubiquitous", Lemma: "ubiquitous", Level: domain.LevelC1, FrequencyScore: 2.8, Tier: domain.Tier1, Count: 3},
	}

	require.NoError(t, WriteCleanEntries(path, entries))
	got, err := ReadCleanEntries(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestReadRawWordsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))
	_, err := ReadRawWords(path)
	require.Error(t, err)
}
