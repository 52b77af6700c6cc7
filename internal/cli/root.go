package cli

import (
	"io"
	"os"

	"maturity-tracker-backend/internal/api/handlers"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Env is shared by every command
type Env struct {
	Config *config.Config
	// Open connects to the configured database. skipMigrate leaves the schema untouched.
	Open func(cfg *config.Config, skipMigrate bool) (*gorm.DB, error)
	Out  io.Writer
}

// NewEnv returns an environment backed by the real database and stdout
func NewEnv(cfg *config.Config) *Env {
	return &Env{Config: cfg, Open: database.Connect, Out: os.Stdout}
}

// NewRootCmd assembles the maturityctl command tree
func NewRootCmd(env *Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maturityctl",
		Short:         "Administer the maturity tracker database",
		Version:       handlers.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `maturityctl manages the maturity tracker schema and data: it migrates the
database, loads seed documents, prints campaign roll-ups and issues API tokens.`,
	}
	rootCmd.SetOut(env.Out)

	rootCmd.AddCommand(MigrateCmd(env))
	rootCmd.AddCommand(SeedCmd(env))
	rootCmd.AddCommand(SummaryCmd(env))
	rootCmd.AddCommand(TokenCmd(env))
	rootCmd.AddCommand(VersionCmd(env))

	return rootCmd
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
