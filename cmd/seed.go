package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MyelinBots/ecochat-go/internal/app"
	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories"
	"github.com/MyelinBots/ecochat-go/internal/services/account"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the task catalog and the default user",
	Long: `Insert the default sustainability task catalog and the demo account.

Existing rows are left untouched, so seed can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	database, err := db.Open(ctx, cfg.DBConfig)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.DBConfig.AutoMigrate {
		if err := repositories.AutoMigrate(ctx, database); err != nil {
			return err
		}
	}

	seed := cfg.SeedConfig
	// an explicit seed always loads the catalog
	seed.SeedCatalog = true
	if err := app.Seed(ctx, database, account.New(database, cfg.AuthConfig.BcryptCost), seed); err != nil {
		return err
	}
	logger.Info("seed complete")
	return nil
}
