package cli

import (
	"fmt"

	"maturity-tracker-backend/internal/api/handlers"

	"github.com/spf13/cobra"
)

// VersionCmd returns the version command
func VersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(env.Out, "maturityctl %s\n", handlers.Version)
		},
	}
}
