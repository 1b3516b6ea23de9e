package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabdeck/internal/app"
	"github.com/heartmarshall/vocabdeck/internal/config"
)

var (
	configPath string

	cfg *config.Config
	log *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:     "vocabdeck",
		Short:   "Turn Kindle vocabulary lookups into flashcard deck files",
		Version: app.BuildVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "load config: %v\n", err)
				return err
			}
			log = app.NewLogger(cfg.Log)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./vocabdeck.yaml)")

	root.AddCommand(extractCmd(), ingestCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vocabdeck: %v\n", err)
		return err
	}
	return nil
}
