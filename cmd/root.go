package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyelinBots/ecochat-go/config"
	"github.com/MyelinBots/ecochat-go/internal/logging"
)

var (
	configPath string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ecochat",
	Short: "EcoChat backend",
	Long: `EcoChat backend: accounts, sustainability tasks, levels, ranking and friends.

Examples:
  ecochat serve
  ecochat serve --config config/config.prod.json
  ecochat migrate up
  ecochat migrate down 1
  ecochat seed`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.Setup(cfg.AppConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the JSON config file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
