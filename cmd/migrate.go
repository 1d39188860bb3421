package cmd

import (
	"fmt"

	"github.com/frahmantamala/finance-tracker/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files (embedded, or under --dir)",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "sql migrations directory (default: migrations built into the binary)")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer db.Close()

	if err := storage.Migrate(cmd.Context(), db, migrateDir, migrateRollback); err != nil {
		return err
	}

	logger.Info("migration finished", "rollback", migrateRollback)
	return nil
}
