// Package deck windows classified entries into numbered batches and writes
// them as tab-separated deck files for flashcard import.
package deck

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// Enricher supplies definitions and synonyms for a batch of entries.
// Results must align with the input by position.
type Enricher interface {
	EnrichAll(ctx context.Context, entries []domain.CleanEntry, concurrency int) []domain.Enrichment
}

// Options holds export settings.
type Options struct {
	Dir           string
	BatchSize     int
	Concurrency   int
	ExampleMaxLen int
}

// Report summarizes one export invocation.
type Report struct {
	Tier  domain.Tier
	Batch int
	Rows  int
	File  string // empty when nothing was written
}

// Exporter writes deck batches. Batches are append-only: a lemma present in
// any earlier batch file for a tier is never exported again for that tier.
type Exporter struct {
	log  *slog.Logger
	enr  Enricher
	opts Options
}

// NewExporter creates an Exporter.
func NewExporter(log *slog.Logger, enr Enricher, opts Options) *Exporter {
	return &Exporter{log: log, enr: enr, opts: opts}
}

// Export writes the next batch for the tier. The full row set is assembled
// in memory (enrichment included) before the file is created, so a failed
// run never leaves a partial batch behind.
func (e *Exporter) Export(ctx context.Context, entries []domain.CleanEntry, tier domain.Tier) (Report, error) {
	report := Report{Tier: tier}

	if err := os.MkdirAll(e.opts.Dir, 0o755); err != nil {
		return report, fmt.Errorf("create export dir: %w", err)
	}

	existing, err := e.batchFiles(tier)
	if err != nil {
		return report, err
	}
	report.Batch = len(existing) + 1

	exported, err := e.exportedLemmas(existing)
	if err != nil {
		return report, err
	}

	window := Window(entries, tier, exported, e.opts.BatchSize)
	if len(window) == 0 {
		e.log.Info("nothing left to export", slog.Int("tier", int(tier)))
		return report, nil
	}

	enrichments := e.enr.EnrichAll(ctx, window, e.opts.Concurrency)

	path := filepath.Join(e.opts.Dir, fmt.Sprintf("deck_t%d_%02d.tsv", tier, report.Batch))
	if err := e.writeBatch(path, window, enrichments); err != nil {
		return report, err
	}

	report.Rows = len(window)
	report.File = path
	e.log.Info("batch exported",
		slog.Int("tier", int(tier)),
		slog.Int("batch", report.Batch),
		slog.Int("rows", report.Rows),
		slog.String("file", path),
	)
	return report, nil
}

// Window returns the next batch for the tier: entries of that tier minus
// already-exported lemmas, sorted by lookup count desc, then frequency score
// desc, then lemma asc as a final deterministic tie-break.
func Window(entries []domain.CleanEntry, tier domain.Tier, exported map[string]bool, batchSize int) []domain.CleanEntry {
	var remaining []domain.CleanEntry
	for _, entry := range entries {
		if entry.Tier != tier || exported[entry.Lemma] {
			continue
		}
		remaining = append(remaining, entry)
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		a, b := remaining[i], remaining[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.FrequencyScore != b.FrequencyScore {
			return a.FrequencyScore > b.FrequencyScore
		}
		return a.Lemma < b.Lemma
	})

	if len(remaining) > batchSize {
		remaining = remaining[:batchSize]
	}
	return remaining
}

// batchFiles lists existing batch files for the tier, sorted by name.
func (e *Exporter) batchFiles(tier domain.Tier) ([]string, error) {
	pattern := filepath.Join(e.opts.Dir, fmt.Sprintf("deck_t%d_*.tsv", tier))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob deck files: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

// exportedLemmas re-scans prior batch files and collects their first-column
// lemmas. Scanning at export time (instead of keeping a ledger) keeps the
// deck directory itself the source of truth across incremental runs.
func (e *Exporter) exportedLemmas(files []string) (map[string]bool, error) {
	exported := make(map[string]bool)
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		r := csv.NewReader(f)
		r.Comma = '\t'
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			if lemma := stripPOSSuffix(row[0]); lemma != "" {
				exported[lemma] = true
			}
		}
	}
	return exported, nil
}

// writeBatch serializes one batch as tab-separated rows.
func (e *Exporter) writeBatch(path string, entries []domain.CleanEntry, enrichments []domain.Enrichment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for i, entry := range entries {
		if err := w.Write(e.row(entry, enrichments[i])); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// row builds the six output columns:
// lemma(+pos), blank placeholder, definition, truncated example,
// comma-joined synonyms, metadata tag.
func (e *Exporter) row(entry domain.CleanEntry, enrichment domain.Enrichment) []string {
	front := entry.Lemma
	if entry.PartOfSpeech != "" {
		front = fmt.Sprintf("%s (%s)", entry.Lemma, entry.PartOfSpeech)
	}

	tag := fmt.Sprintf("t%d %s f%.1f", entry.Tier, entry.Level, entry.FrequencyScore)

	return []string{
		front,
		"",
		enrichment.Definition,
		truncate(entry.Example, e.opts.ExampleMaxLen),
		strings.Join(enrichment.Synonyms, ", "),
		tag,
	}
}

// stripPOSSuffix removes a trailing " (pos)" annotation from a card front.
func stripPOSSuffix(front string) string {
	if i := strings.Index(front, " ("); i >= 0 {
		front = front[:i]
	}
	return strings.TrimSpace(front)
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
