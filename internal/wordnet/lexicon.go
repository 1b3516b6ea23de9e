// Package wordnet reads an Open English WordNet JSON directory and answers
// sense lookups for the deck enricher.
//
// Expected directory layout (as distributed by
// https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   — lemma entries keyed by word
//	noun.*.json, verb.*.json, …       — synsets keyed by synset ID
package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// Part-of-speech labels as the rest of the pipeline uses them.
const (
	POSNoun      = "noun"
	POSVerb      = "verb"
	POSAdjective = "adjective"
	POSAdverb    = "adverb"
)

// posKeys lists OEWN part-of-speech tags in the order senses are ranked:
// noun first, then verb, adjective (incl. satellites), adverb.
var posKeys = []struct {
	tag string
	pos string
}{
	{"n", POSNoun},
	{"v", POSVerb},
	{"a", POSAdjective},
	{"s", POSAdjective},
	{"r", POSAdverb},
}

// Sense is one dictionary sense of a word: its part of speech, the synset
// gloss, and the synset members (words sharing the meaning, incl. the word
// itself). Senses for a word are ordered most-frequent-first.
type Sense struct {
	POS        string
	Definition string
	Members    []string
}

// Lexicon holds the loaded reference, keyed by normalized word.
type Lexicon struct {
	senses map[string][]Sense
}

// OEWN JSON deserialization types.

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]oewnPOSEntry

// oewnPOSEntry holds senses for a single POS of a word.
type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
}

// oewnSense links a word to a synset.
type oewnSense struct {
	ID     string `json:"id"`
	Synset string `json:"synset"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	Members    []string `json:"members"`
	Definition []string `json:"definition"`
}

// Load reads every entry and synset file in the directory and assembles the
// in-memory lexicon. Loading is all-or-nothing: a malformed file fails the
// whole load (callers degrade to an empty lexicon).
func Load(dirPath string) (*Lexicon, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	// Step 1: read all synset files.
	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}

	synsets := make(map[string]oewnSynset)
	for _, path := range synsetFiles {
		fileSynsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for id, synset := range fileSynsets {
			synsets[id] = synset
		}
	}

	// Step 2: read entry files and resolve each sense against its synset.
	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}

	lex := &Lexicon{senses: make(map[string][]Sense)}
	for _, path := range entryFiles {
		entries, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}

		for word, posMap := range entries {
			normalized := domain.NormalizeText(word)
			if normalized == "" {
				continue
			}
			// Iterate POS tags in canonical order so sense ranking is
			// deterministic regardless of map iteration.
			for _, pk := range posKeys {
				posEntry, ok := posMap[pk.tag]
				if !ok {
					continue
				}
				for _, sense := range posEntry.Sense {
					synset, ok := synsets[sense.Synset]
					if !ok {
						continue
					}
					definition := ""
					if len(synset.Definition) > 0 {
						definition = synset.Definition[0]
					}
					lex.senses[normalized] = append(lex.senses[normalized], Sense{
						POS:        pk.pos,
						Definition: definition,
						Members:    synset.Members,
					})
				}
			}
		}
	}

	return lex, nil
}

// Empty returns a Lexicon with no entries; every lookup degrades to no match.
func Empty() *Lexicon {
	return &Lexicon{senses: map[string][]Sense{}}
}

// Senses returns the ordered senses for a word, or nil when unknown.
func (l *Lexicon) Senses(word string) []Sense {
	return l.senses[domain.NormalizeText(word)]
}

// Words returns the number of distinct words in the lexicon.
func (l *Lexicon) Words() int {
	return len(l.senses)
}

func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files ({pos}.{category}.json).
func globSynsetFiles(dirPath string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dirPath, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}
