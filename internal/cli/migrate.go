package cli

import (
	"fmt"

	"maturity-tracker-backend/internal/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// MigrateCmd returns the migrate command
func MigrateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := env.Open(env.Config, true)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}

			fmt.Fprintf(env.Out, "%s Schema migrated (%d tables, driver %s)\n",
				color.New(color.FgGreen).Sprint("✓"), len(database.Models()), env.Config.DatabaseDriver)
			return nil
		},
	}
}
