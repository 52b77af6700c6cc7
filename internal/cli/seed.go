package cli

import (
	"fmt"
	"text/tabwriter"

	"maturity-tracker-backend/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed command
func SeedCmd(env *Env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data into the database",
		Long: `Load a seed document. Without --file the bundled sample data is used.
Records that already exist are left untouched, so seeding twice is safe.

Examples:
  maturityctl seed
  maturityctl seed --file ./config/seed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeed(file)
			if err != nil {
				return err
			}

			db, err := env.Open(env.Config, false)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer closeDB(db)

			result, err := seed.Apply(cmd.Context(), db, data)
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Fprintf(env.Out, "%s Seed applied\n", color.New(color.FgGreen).Sprint("✓"))
			w := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RECORD\tCREATED")
			for _, row := range []struct {
				label string
				count int
			}{
				{"users", result.Users},
				{"categories", result.Categories},
				{"teams", result.Teams},
				{"services", result.Services},
				{"maturity models", result.Models},
				{"measurements", result.Measurements},
				{"campaigns", result.Campaigns},
				{"participants", result.Participants},
				{"evaluations", result.Evaluations},
			} {
				fmt.Fprintf(w, "%s\t%d\n", row.label, row.count)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed document (YAML); defaults to the bundled sample")

	return cmd
}

func loadSeed(file string) (*seed.Data, error) {
	if file == "" {
		return seed.Sample()
	}
	return seed.LoadFile(file)
}
