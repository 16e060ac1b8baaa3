package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MyelinBots/ecochat-go/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured HTTP port")
	serveCmd.Flags().Bool("no-seed", false, "skip seeding the catalog and default user")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.AppConfig.Port = port
	}

	logger.Info("starting ecochat",
		slog.String("version", cfg.AppConfig.Version),
		slog.String("db_driver", cfg.DBConfig.Driver),
	)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if noSeed, _ := cmd.Flags().GetBool("no-seed"); !noSeed {
		if err := a.Seed(ctx); err != nil {
			return err
		}
	}

	return a.Run(ctx)
}

