// Package pipeline implements the ingest pass: raw Kindle lookups in,
// normalized, classified, deduplicated CleanEntry artifact out.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/vocabdeck/internal/domain"
	"github.com/heartmarshall/vocabdeck/internal/lemma"
	"github.com/heartmarshall/vocabdeck/internal/refdata"
	"github.com/heartmarshall/vocabdeck/internal/tier"
)

// Result holds counters for one ingest run.
type Result struct {
	Total      int
	Kept       int
	StopWords  int
	Duplicates int
	Known      int
	Empty      int
}

// Ingestor runs the normalize/classify/dedupe pass over raw words.
type Ingestor struct {
	log   *slog.Logger
	refs  *refdata.Refs
	audit *Audit
}

// NewIngestor creates an Ingestor. audit may be nil to disable the side log.
func NewIngestor(log *slog.Logger, refs *refdata.Refs, audit *Audit) *Ingestor {
	return &Ingestor{log: log, refs: refs, audit: audit}
}

// Run processes raw words in input order and returns at most one CleanEntry
// per lemma (first occurrence wins). It is a pure function of its inputs:
// the same raw words and reference maps always produce the same entries.
func (i *Ingestor) Run(raw []domain.RawWord) ([]domain.CleanEntry, Result) {
	var result Result
	result.Total = len(raw)

	seen := make(map[string]bool, len(raw))
	entries := make([]domain.CleanEntry, 0, len(raw))

	for _, rw := range raw {
		word := domain.NormalizeText(rw.Word)
		if word == "" {
			result.Empty++
			continue
		}

		if i.refs.IsStopWord(word) {
			result.StopWords++
			i.audit.Record(word, "stopword")
			continue
		}

		lem := lemma.Choose(word, i.refs)
		if i.refs.IsStopWord(lem) {
			result.StopWords++
			i.audit.Record(word, "stopword-lemma")
			continue
		}

		if seen[lem] {
			result.Duplicates++
			i.audit.Record(word, "duplicate")
			continue
		}
		seen[lem] = true

		if i.refs.IsKnown(lem) {
			result.Known++
			i.audit.Record(word, "known")
			continue
		}

		entries = append(entries, i.buildEntry(rw, word, lem))
		result.Kept++
	}

	i.log.Info("ingest completed",
		slog.Int("total", result.Total),
		slog.Int("kept", result.Kept),
		slog.Int("stop_words", result.StopWords),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("known", result.Known),
		slog.Int("empty", result.Empty),
	)

	return entries, result
}

func (i *Ingestor) buildEntry(rw domain.RawWord, word, lem string) domain.CleanEntry {
	level := domain.DefaultLevel
	pos := ""
	if info, ok := i.refs.LevelFor(lem); ok {
		level = info.Level
		pos = info.PartOfSpeech
	}

	freq := tier.DefaultFrequency
	if score, ok := i.refs.FrequencyFor(lem); ok {
		freq = score
	}

	return domain.CleanEntry{
		Word:           word,
		Lemma:          lem,
		Example:        rw.Example,
		Count:          rw.Count,
		Level:          level,
		PartOfSpeech:   pos,
		FrequencyScore: freq,
		Tier:           tier.Classify(level, freq, rw.Count),
	}
}

// ReadRawWords decodes the raw words JSON artifact. Malformed input is a
// fatal error for the ingest command; nothing partial is ever written.
func ReadRawWords(path string) ([]domain.RawWord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw words %s: %w", path, err)
	}
	var raw []domain.RawWord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode raw words %s: %w", path, err)
	}
	return raw, nil
}

// WriteCleanEntries overwrites the CleanEntry artifact in one write: the
// whole array is marshalled in memory first, so a failed run leaves either
// the previous artifact or a complete new one, never a torn file.
func WriteCleanEntries(path string, entries []domain.CleanEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode clean entries: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write clean entries %s: %w", path, err)
	}
	return nil
}

// ReadCleanEntries decodes the CleanEntry artifact for export.
func ReadCleanEntries(path string) ([]domain.CleanEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clean entries %s: %w", path, err)
	}
	var entries []domain.CleanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode clean entries %s: %w", path, err)
	}
	return entries, nil
}
