// Package lemma chooses a canonical dictionary form for a raw surface word.
//
// The chooser is deliberately biased toward forms the reference maps know
// about rather than linguistic correctness: a candidate that carries level or
// frequency metadata beats a "more correct" reduction without any.
package lemma

import (
	"slices"
	"strings"

	"github.com/heartmarshall/vocabdeck/internal/domain"
	"github.com/heartmarshall/vocabdeck/internal/refdata"
)

// minNonTrivial is the shortest reduction accepted when no candidate has
// reference metadata. Shorter stems are almost always over-reductions.
const minNonTrivial = 3

// Candidates generates reduced forms of word in preference order:
// plural/3rd-person reductions first, then past-tense and -ing forms, then
// comparative/superlative forms. The original word is not included.
func Candidates(word string) []string {
	var out []string
	add := func(s string) {
		if s != "" && s != word && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	// Plural nouns and 3rd-person verbs.
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		add(strings.TrimSuffix(word, "ies") + "y")
	case strings.HasSuffix(word, "ves") && len(word) > 4:
		add(strings.TrimSuffix(word, "ves") + "f")
		add(strings.TrimSuffix(word, "ves") + "fe")
	case hasAnySuffix(word, "ses", "xes", "zes", "ches", "shes"):
		add(strings.TrimSuffix(word, "es"))
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 3:
		add(strings.TrimSuffix(word, "s"))
	}

	// Past tense and participles.
	if strings.HasSuffix(word, "ied") && len(word) > 4 {
		add(strings.TrimSuffix(word, "ied") + "y")
	} else if strings.HasSuffix(word, "ed") && len(word) > 3 {
		stem := strings.TrimSuffix(word, "ed")
		add(stem)
		add(stem + "e")
		add(undouble(stem))
	}

	// Progressive forms.
	if strings.HasSuffix(word, "ing") && len(word) > 4 {
		stem := strings.TrimSuffix(word, "ing")
		add(stem)
		add(stem + "e")
		add(undouble(stem))
	}

	// Comparatives and superlatives.
	if strings.HasSuffix(word, "ier") && len(word) > 4 {
		add(strings.TrimSuffix(word, "ier") + "y")
	} else if strings.HasSuffix(word, "er") && len(word) > 3 {
		stem := strings.TrimSuffix(word, "er")
		add(stem)
		add(stem + "e")
		add(undouble(stem))
	}
	if strings.HasSuffix(word, "iest") && len(word) > 5 {
		add(strings.TrimSuffix(word, "iest") + "y")
	} else if strings.HasSuffix(word, "est") && len(word) > 4 {
		stem := strings.TrimSuffix(word, "est")
		add(stem)
		add(stem + "e")
		add(undouble(stem))
	}

	return out
}

// Choose returns the canonical lemma for a raw word. It never returns an
// empty string for non-empty input.
//
// Selection order:
//  1. the first candidate (original word last) present in the level map or
//     the frequency map;
//  2. the first non-trivial candidate;
//  3. the original word.
func Choose(word string, refs *refdata.Refs) string {
	word = domain.NormalizeText(word)
	if word == "" {
		return word
	}

	candidates := Candidates(word)

	for _, c := range candidates {
		if refs.HasMetadata(c) {
			return c
		}
	}
	if refs.HasMetadata(word) {
		return word
	}

	for _, c := range candidates {
		if len(c) >= minNonTrivial {
			return c
		}
	}

	return word
}

// undouble strips one of two identical trailing consonants (stopp → stop).
func undouble(stem string) string {
	if len(stem) < 3 {
		return ""
	}
	last := stem[len(stem)-1]
	if stem[len(stem)-2] != last {
		return ""
	}
	switch last {
	case 'a', 'e', 'i', 'o', 'u', 's', 'l':
		// Doubled vowels and -ss/-ll endings are part of the stem
		// (boss, fall), not inflection doubling.
		return ""
	}
	return stem[:len(stem)-1]
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) && len(word) > len(s) {
			return true
		}
	}
	return false
}
