package domain

// RawWord is one aggregated Kindle lookup: the surface word plus how many
// times it was looked up and a representative usage sentence. Produced by
// the extract step (or any upstream tool emitting the same JSON shape).
type RawWord struct {
	Word    string `json:"word"`
	Stem    string `json:"stem,omitempty"`
	Example string `json:"example,omitempty"`
	Title   string `json:"title,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// CleanEntry is the pipeline's durable intermediate record: a raw word that
// survived stop-word/known-word filtering, resolved to a single lemma and
// classified into a difficulty tier. At most one CleanEntry exists per lemma
// within a run (first occurrence wins).
type CleanEntry struct {
	Word           string  `json:"word"`
	Lemma          string  `json:"lemma"`
	Example        string  `json:"example,omitempty"`
	Count          int     `json:"count"`
	Level          Level   `json:"level"`
	PartOfSpeech   string  `json:"pos,omitempty"`
	FrequencyScore float64 `json:"frequency"`
	Tier           Tier    `json:"tier"`
}

// Enrichment holds the dictionary data attached to a lemma at export time.
// Both fields may be empty when the lexical reference has no match; that is
// a valid result, not an error.
type Enrichment struct {
	Definition string
	Synonyms   []string
}
