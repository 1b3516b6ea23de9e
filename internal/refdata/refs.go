// Package refdata loads the read-only reference datasets the pipeline
// consults: stop-word and known-word lists, the CEFR level map, and the
// corpus frequency map. Loaders are pure functions (path in, structs out);
// Load assembles them with the warn-and-substitute policy for optional files.
package refdata

import (
	"log/slog"

	"github.com/heartmarshall/vocabdeck/internal/config"
	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// LevelInfo is one level-map record: the CEFR level of a word plus the part
// of speech the level list assigned it.
type LevelInfo struct {
	Level        domain.Level `json:"level"`
	PartOfSpeech string       `json:"pos"`
}

// Refs aggregates all reference maps for one invocation. It is loaded once
// and passed explicitly into the normalizer and classifier; nothing here is
// mutated after Load returns.
type Refs struct {
	StopWords  map[string]bool
	KnownWords map[string]bool
	Levels     map[string]LevelInfo
	Frequency  map[string]float64
}

// Load reads every reference dataset named in cfg. A missing or unreadable
// reference file is logged and replaced with an empty substitute; it never
// fails the run.
func Load(cfg *config.Config, log *slog.Logger) *Refs {
	refs := &Refs{
		StopWords:  map[string]bool{},
		KnownWords: map[string]bool{},
		Levels:     map[string]LevelInfo{},
		Frequency:  map[string]float64{},
	}

	if set, err := LoadWordSet(cfg.StopwordsPath()); err != nil {
		log.Warn("stop-word list unavailable, proceeding without",
			slog.String("path", cfg.StopwordsPath()), slog.String("error", err.Error()))
	} else {
		refs.StopWords = set
	}

	if set, err := LoadWordSet(cfg.KnownWordsPath()); err != nil {
		log.Warn("known-word list unavailable, proceeding without",
			slog.String("path", cfg.KnownWordsPath()), slog.String("error", err.Error()))
	} else {
		refs.KnownWords = set
	}

	if levels, err := LoadLevelMap(cfg.LevelMapPath()); err != nil {
		log.Warn("level map unavailable, all words default to "+domain.DefaultLevel.String(),
			slog.String("path", cfg.LevelMapPath()), slog.String("error", err.Error()))
	} else {
		refs.Levels = levels
	}

	if freq, err := LoadFrequencyMap(cfg.FrequencyXLSXPath(), cfg.FrequencyCachePath()); err != nil {
		log.Warn("frequency map unavailable, scores default to mid-range",
			slog.String("path", cfg.FrequencyXLSXPath()), slog.String("error", err.Error()))
	} else {
		refs.Frequency = freq
	}

	log.Info("reference data loaded",
		slog.Int("stop_words", len(refs.StopWords)),
		slog.Int("known_words", len(refs.KnownWords)),
		slog.Int("level_entries", len(refs.Levels)),
		slog.Int("frequency_entries", len(refs.Frequency)),
	)

	return refs
}

// IsStopWord reports whether the normalized word is in the stop-word set.
func (r *Refs) IsStopWord(word string) bool {
	return r.StopWords[domain.NormalizeText(word)]
}

// IsKnown reports whether the normalized word is in the known-word set.
func (r *Refs) IsKnown(word string) bool {
	return r.KnownWords[domain.NormalizeText(word)]
}

// LevelFor returns the level-map record for the word, if any.
func (r *Refs) LevelFor(word string) (LevelInfo, bool) {
	info, ok := r.Levels[domain.NormalizeText(word)]
	return info, ok
}

// FrequencyFor returns the corpus frequency score for the word, if any.
func (r *Refs) FrequencyFor(word string) (float64, bool) {
	score, ok := r.Frequency[domain.NormalizeText(word)]
	return score, ok
}

// HasMetadata reports whether either reference map knows the word.
// The lemma chooser prefers candidates with known metadata.
func (r *Refs) HasMetadata(word string) bool {
	if _, ok := r.Levels[word]; ok {
		return true
	}
	_, ok := r.Frequency[word]
	return ok
}
