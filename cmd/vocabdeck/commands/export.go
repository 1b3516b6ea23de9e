package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabdeck/internal/deck"
	"github.com/heartmarshall/vocabdeck/internal/domain"
	"github.com/heartmarshall/vocabdeck/internal/pipeline"
	"github.com/heartmarshall/vocabdeck/internal/wordnet"
)

func exportCmd() *cobra.Command {
	var (
		tierNum   int
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "export --tier N",
		Short: "Write the next deck batch for a tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := domain.Tier(tierNum)
			if !tier.IsValid() {
				return fmt.Errorf("%w: tier must be 1, 2 or 3", domain.ErrValidation)
			}
			if batchSize == 0 {
				batchSize = cfg.Export.BatchSize
			}

			entries, err := pipeline.ReadCleanEntries(cfg.CleanWordsPath())
			if err != nil {
				return fmt.Errorf("read clean words (run ingest first): %w", err)
			}

			lex, err := wordnet.Load(cfg.WordNetDirPath())
			if err != nil {
				log.Warn("lexical reference unavailable, exporting without definitions", "error", err)
				lex = wordnet.Empty()
			}

			exporter := deck.NewExporter(log, wordnet.NewEnricher(lex, log), deck.Options{
				Dir:           cfg.ExportDirPath(),
				BatchSize:     batchSize,
				Concurrency:   cfg.Export.LookupConcurrency,
				ExampleMaxLen: cfg.Export.ExampleMaxLen,
			})

			report, err := exporter.Export(cmd.Context(), entries, tier)
			if err != nil {
				return err
			}

			if report.Rows == 0 {
				fmt.Printf("Tier %d: nothing left to export\n", tierNum)
				return nil
			}
			fmt.Printf("Tier %d batch %d: %d rows written to %s\n",
				tierNum, report.Batch, report.Rows, report.File)
			return nil
		},
	}

	cmd.Flags().IntVarP(&tierNum, "tier", "t", 0, "difficulty tier to export (1-3)")
	cmd.Flags().IntVarP(&batchSize, "batch", "b", 0, "batch size override (default from config)")
	_ = cmd.MarkFlagRequired("tier")

	return cmd
}
