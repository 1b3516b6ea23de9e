package deck

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// stubEnricher returns a canned enrichment per lemma, empty otherwise.
type stubEnricher struct {
	byLemma map[string]domain.Enrichment
}

func (s *stubEnricher) EnrichAll(_ context.Context, entries []domain.CleanEntry, _ int) []domain.Enrichment {
	results := make([]domain.Enrichment, len(entries))
	for i, e := range entries {
		results[i] = s.byLemma[e.Lemma]
	}
	return results
}

func newExporter(t *testing.T, dir string, batchSize int, enr Enricher) *Exporter {
	t.Helper()
	if enr == nil {
		enr = &stubEnricher{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExporter(log, enr, Options{
		Dir:           dir,
		BatchSize:     batchSize,
		Concurrency:   4,
		ExampleMaxLen: 120,
	})
}

func tierEntries(tier domain.Tier, n int) []domain.CleanEntry {
	entries := make([]domain.CleanEntry, n)
	for i := range entries {
		entries[i] = domain.CleanEntry{
			Word:           fmt.Sprintf("word%03d", i),
			Lemma:          fmt.Sprintf("word%03d", i),
			Count:          n - i,
			Level:          domain.LevelB1,
			FrequencyScore: 4.5,
			Tier:           tier,
		}
	}
	return entries
}

func readTSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWindowFiltersAndSorts(t *testing.T) {
	entries := []domain.CleanEntry{
		{Lemma: "zeta", Count: 1, FrequencyScore: 3.0, Tier: domain.Tier2},
		{Lemma: "alpha", Count: 1, FrequencyScore: 3.0, Tier: domain.Tier2},
		{Lemma: "beta", Count: 5, FrequencyScore: 2.0, Tier: domain.Tier2},
		{Lemma: "gamma", Count: 1, FrequencyScore: 4.0, Tier: domain.Tier2},
		{Lemma: "other", Count: 9, FrequencyScore: 1.0, Tier: domain.Tier1},
		{Lemma: "done", Count: 9, FrequencyScore: 1.0, Tier: domain.Tier2},
	}
	exported := map[string]bool{"done": true}

	window := Window(entries, domain.Tier2, exported, 10)

	var lemmas []string
	for _, e := range window {
		lemmas = append(lemmas, e.Lemma)
	}
	// Count desc, then frequency desc, then lemma asc.
	assert.Equal(t, []string{"beta", "gamma", "alpha", "zeta"}, lemmas)
}

func TestWindowRespectsBatchSize(t *testing.T) {
	window := Window(tierEntries(domain.Tier2, 35), domain.Tier2, nil, 30)
	assert.Len(t, window, 30)
}

func TestExportIncrementalBatches(t *testing.T) {
	dir := t.TempDir()
	entries := tierEntries(domain.Tier2, 35)
	exp := newExporter(t, dir, 30, nil)
	ctx := context.Background()

	// First call: 30 rows in batch 1.
	report, err := exp.Export(ctx, entries, domain.Tier2)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Batch)
	assert.Equal(t, 30, report.Rows)
	assert.FileExists(t, filepath.Join(dir, "deck_t2_01.tsv"))

	// Second call: remaining 5 rows in batch 2.
	report, err = exp.Export(ctx, entries, domain.Tier2)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Batch)
	assert.Equal(t, 5, report.Rows)
	assert.FileExists(t, filepath.Join(dir, "deck_t2_02.tsv"))

	// Third call: nothing left, no file written.
	report, err = exp.Export(ctx, entries, domain.Tier2)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Rows)
	assert.Empty(t, report.File)
	assert.NoFileExists(t, filepath.Join(dir, "deck_t2_03.tsv"))
}

func TestExportNeverRepeatsLemmas(t *testing.T) {
	dir := t.TempDir()
	entries := tierEntries(domain.Tier1, 12)
	exp := newExporter(t, dir, 8, nil)
	ctx := context.Background()

	_, err := exp.Export(ctx, entries, domain.Tier1)
	require.NoError(t, err)
	_, err = exp.Export(ctx, entries, domain.Tier1)
	require.NoError(t, err)

	first := readTSV(t, filepath.Join(dir, "deck_t1_01.tsv"))
	second := readTSV(t, filepath.Join(dir, "deck_t1_02.tsv"))

	seen := map[string]bool{}
	for _, row := range first {
		seen[row[0]] = true
	}
	for _, row := range second {
		assert.False(t, seen[row[0]], "lemma %q exported twice", row[0])
	}
	assert.Len(t, first, 8)
	assert.Len(t, second, 4)
}

func TestExportRowFormat(t *testing.T) {
	dir := t.TempDir()
	entries := []domain.CleanEntry{{
		Word:           "hoped",
		Lemma:          "hope",
		Example:        "She hoped for the best.",
		Count:          3,
		Level:          domain.LevelA2,
		PartOfSpeech:   "verb",
		FrequencyScore: 5.3,
		Tier:           domain.Tier3,
	}}
	enr := &stubEnricher{byLemma: map[string]domain.Enrichment{
		"hope": {Definition: "expect and wish", Synonyms: []string{"trust", "desire"}},
	}}
	exp := newExporter(t, dir, 30, enr)

	report, err := exp.Export(context.Background(), entries, domain.Tier3)
	require.NoError(t, err)
	require.Equal(t, 1, report.Rows)

	rows := readTSV(t, report.File)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 6)

	assert.Equal(t, "hope (verb)", rows[0][0])
	assert.Equal(t, "", rows[0][1])
	assert.Equal(t, "expect and wish", rows[0][2])
	assert.Equal(t, "She hoped for the best.", rows[0][3])
	assert.Equal(t, "trust, desire", rows[0][4])
	assert.Equal(t, "t3 A2 f5.3", rows[0][5])
}

func TestExportTruncatesExample(t *testing.T) {
	dir := t.TempDir()
	entries := []domain.CleanEntry{{
		Word:           "long",
		Lemma:          "long",
		Example:        strings.Repeat("э", 200),
		Level:          domain.LevelB1,
		FrequencyScore: 4.0,
		Tier:           domain.Tier2,
	}}
	exp := newExporter(t, dir, 30, nil)

	report, err := exp.Export(context.Background(), entries, domain.Tier2)
	require.NoError(t, err)

	rows := readTSV(t, report.File)
	assert.Equal(t, 120, len([]rune(rows[0][3])))
}

func TestExportedLemmasStripPOS(t *testing.T) {
	assert.Equal(t, "hope", stripPOSSuffix("hope (verb)"))
	assert.Equal(t, "hope", stripPOSSuffix("hope"))
	assert.Equal(t, "look forward", stripPOSSuffix("look forward (verb)"))
}

func TestExportEmptyEntriesForTier(t *testing.T) {
	dir := t.TempDir()
	exp := newExporter(t, dir, 30, nil)

	report, err := exp.Export(context.Background(), tierEntries(domain.Tier1, 5), domain.Tier2)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Rows)

	files, err := filepath.Glob(filepath.Join(dir, "*.tsv"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
