package refdata

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// LoadWordSet reads a newline-delimited word list into a set.
// Blank lines and lines starting with '#' are skipped; every word is
// normalized before insertion.
func LoadWordSet(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	set := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if word := domain.NormalizeText(line); word != "" {
			set[word] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return set, nil
}
