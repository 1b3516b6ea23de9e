package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabdeck/internal/adapter/kindle"
)

func extractCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extract <vocab.db>",
		Short: "Pull the lookup history out of a Kindle vocab.db",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = cfg.RawWordsPath()
			}

			repo, err := kindle.Open(args[0])
			if err != nil {
				return err
			}
			defer repo.Close()

			words, err := repo.Lookups(cmd.Context())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			data, err := json.MarshalIndent(words, "", "  ")
			if err != nil {
				return fmt.Errorf("encode raw words: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			log.Info("extraction finished", "words", len(words), "file", output)
			fmt.Printf("Extracted %d words to %s\n", len(words), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "raw words output file (default from config)")
	return cmd
}
