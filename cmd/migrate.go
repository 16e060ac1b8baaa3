package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MyelinBots/ecochat-go/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the postgres schema",
	Long: `Run the embedded SQL migrations against the configured postgres database.

sqlite databases are created from the models instead (DBConfig.AutoMigrate).

Examples:
  ecochat migrate up
  ecochat migrate down 1`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMigrateDown,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	rootCmd.AddCommand(migrateCmd)
}

func requirePostgres() error {
	if cfg.DBConfig.Driver != db.DriverPostgres {
		return fmt.Errorf("migrate requires the %s driver, configured driver is %q", db.DriverPostgres, cfg.DBConfig.Driver)
	}
	return nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	if err := requirePostgres(); err != nil {
		return err
	}
	if err := db.MigrateUp(cfg.DBConfig); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	if err := requirePostgres(); err != nil {
		return err
	}

	steps, err := parseSteps(args)
	if err != nil {
		return err
	}

	if err := db.MigrateDown(cfg.DBConfig, steps); err != nil {
		return err
	}
	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

// parseSteps reads the optional step count of migrate down. It defaults to 1.
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid steps %q: must be a positive integer", args[0])
	}
	return n, nil
}
