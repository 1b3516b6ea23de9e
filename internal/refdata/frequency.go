package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// LoadFrequencyMap returns the word → frequency-score map. The map is built
// once from the source spreadsheet and cached as flat JSON at cachePath;
// subsequent calls read the cache and never touch the spreadsheet.
func LoadFrequencyMap(xlsxPath, cachePath string) (map[string]float64, error) {
	if cached, err := readFrequencyCache(cachePath); err == nil {
		return cached, nil
	}

	freq, err := buildFrequencyMap(xlsxPath)
	if err != nil {
		return nil, err
	}

	if err := writeFrequencyCache(cachePath, freq); err != nil {
		// The map itself is fine; the cache is an optimization.
		return freq, nil
	}
	return freq, nil
}

// buildFrequencyMap parses the spreadsheet. The first sheet must have a
// header row with a "Word" column and a column whose header contains "freq"
// (case-insensitive); every following row becomes one map entry.
func buildFrequencyMap(xlsxPath string) (map[string]float64, error) {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("open frequency spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("frequency spreadsheet %s has no sheets", xlsxPath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	wordCol, freqCol := -1, -1
	for i, header := range rows[0] {
		h := strings.ToLower(strings.TrimSpace(header))
		if h == "word" && wordCol < 0 {
			wordCol = i
		}
		if strings.Contains(h, "freq") && freqCol < 0 {
			freqCol = i
		}
	}
	if wordCol < 0 || freqCol < 0 {
		return nil, fmt.Errorf("sheet %s: header must contain a Word column and a frequency column", sheets[0])
	}

	freq := make(map[string]float64, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= wordCol || len(row) <= freqCol {
			continue
		}
		word := domain.NormalizeText(row[wordCol])
		if word == "" {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(row[freqCol]), 64)
		if err != nil {
			continue
		}
		// First occurrence wins on duplicate words.
		if _, exists := freq[word]; !exists {
			freq[word] = score
		}
	}

	return freq, nil
}

func readFrequencyCache(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var freq map[string]float64
	if err := json.Unmarshal(data, &freq); err != nil {
		return nil, fmt.Errorf("decode frequency cache: %w", err)
	}
	return freq, nil
}

func writeFrequencyCache(path string, freq map[string]float64) error {
	data, err := json.MarshalIndent(freq, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
