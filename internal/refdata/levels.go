package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// rawLevelEntry matches the on-disk level map format.
type rawLevelEntry struct {
	Level string `json:"level"`
	POS   string `json:"pos"`
}

// LoadLevelMap reads a JSON object mapping words to their CEFR level and part
// of speech. Keys are normalized; entries with an unparseable level are
// skipped rather than failing the whole map.
func LoadLevelMap(path string) (map[string]LevelInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level map: %w", err)
	}
	defer f.Close()

	var raw map[string]rawLevelEntry
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode level map: %w", err)
	}

	levels := make(map[string]LevelInfo, len(raw))
	for word, entry := range raw {
		normalized := domain.NormalizeText(word)
		if normalized == "" {
			continue
		}
		level, ok := domain.ParseLevel(entry.Level)
		if !ok {
			continue
		}
		levels[normalized] = LevelInfo{
			Level:        level,
			PartOfSpeech: strings.ToLower(strings.TrimSpace(entry.POS)),
		}
	}

	return levels, nil
}
