package wordnet

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

const maxSynonyms = 3

// Enricher resolves definitions and synonyms for lemmas against a Lexicon.
// Results are cached per lemma for the lifetime of the Enricher (one run).
type Enricher struct {
	lex *Lexicon
	log *slog.Logger

	mu    sync.Mutex
	cache map[string]domain.Enrichment
}

// NewEnricher creates an Enricher over the given lexicon.
func NewEnricher(lex *Lexicon, log *slog.Logger) *Enricher {
	return &Enricher{
		lex:   lex,
		log:   log,
		cache: make(map[string]domain.Enrichment),
	}
}

// Enrich returns the definition and synonyms for a lemma. A lemma with no
// lexical match yields an empty Enrichment; enrichment never fails a batch.
func (e *Enricher) Enrich(lemma, wantPOS string) domain.Enrichment {
	key := domain.NormalizeText(lemma)

	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return cached
	}
	e.mu.Unlock()

	result := e.lookup(key, wantPOS)

	e.mu.Lock()
	e.cache[key] = result
	e.mu.Unlock()

	return result
}

func (e *Enricher) lookup(lemma, wantPOS string) domain.Enrichment {
	senses := e.lex.Senses(lemma)
	sense, ok := PickSense(senses, wantPOS)
	if !ok {
		e.log.Debug("no lexical match", slog.String("lemma", lemma))
		return domain.Enrichment{}
	}

	return domain.Enrichment{
		Definition: firstClause(sense.Definition),
		Synonyms:   synonymsFor(lemma, sense),
	}
}

// EnrichAll enriches entries with bounded concurrency. Results are placed by
// input position, never by completion order.
func (e *Enricher) EnrichAll(ctx context.Context, entries []domain.CleanEntry, concurrency int) []domain.Enrichment {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]domain.Enrichment, len(entries))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			results[i] = e.Enrich(entry.Lemma, entry.PartOfSpeech)
			return nil
		})
	}
	// Workers never return errors; lookups degrade instead of failing.
	_ = g.Wait()

	return results
}

// firstClause returns the definition text before the first semicolon.
func firstClause(definition string) string {
	if i := strings.IndexByte(definition, ';'); i >= 0 {
		definition = definition[:i]
	}
	return strings.TrimSpace(definition)
}

// synonymsFor extracts up to three synonyms from the sense's synset members:
// lowercased, underscores replaced with spaces, deduplicated, the lemma
// itself excluded. Members share the sense's part of speech by construction.
func synonymsFor(lemma string, sense Sense) []string {
	var synonyms []string
	seen := map[string]bool{lemma: true}

	for _, member := range sense.Members {
		cleaned := domain.NormalizeText(strings.ReplaceAll(member, "_", " "))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		synonyms = append(synonyms, cleaned)
		if len(synonyms) == maxSynonyms {
			break
		}
	}

	return synonyms
}
