package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabdeck/internal/pipeline"
	"github.com/heartmarshall/vocabdeck/internal/refdata"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [raw_words.json]",
		Short: "Normalize, classify and dedupe raw words into the clean artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cfg.RawWordsPath()
			if len(args) == 1 {
				input = args[0]
			}

			raw, err := pipeline.ReadRawWords(input)
			if err != nil {
				return err
			}

			refs := refdata.Load(cfg, log)

			if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}

			audit, err := pipeline.OpenAudit(cfg.AuditLogPath())
			if err != nil {
				log.Warn("audit log unavailable, exclusions will not be recorded", "error", err)
			}
			defer audit.Close()

			entries, result := pipeline.NewIngestor(log, refs, audit).Run(raw)

			if err := pipeline.WriteCleanEntries(cfg.CleanWordsPath(), entries); err != nil {
				return err
			}

			fmt.Printf("Ingested %d words: %d kept, %d stop words, %d duplicates, %d known, %d empty\n",
				result.Total, result.Kept, result.StopWords, result.Duplicates, result.Known, result.Empty)
			return nil
		},
	}
}
