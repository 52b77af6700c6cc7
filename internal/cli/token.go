package cli

import (
	"errors"
	"fmt"
	"time"

	"maturity-tracker-backend/internal/auth"
	"maturity-tracker-backend/internal/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// TokenCmd returns the token command
func TokenCmd(env *Env) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token [username]",
		Short: "Issue an API bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := auth.NewTokenService(env.Config.JWTSecret, ttl)
			if err != nil {
				return err
			}

			db, err := env.Open(env.Config, false)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer closeDB(db)

			user, err := repository.NewUserRepository(db).GetByUsername(args[0])
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %q not found", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to look up user: %w", err)
			}

			token, err := tokens.GenerateToken(user)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}
			fmt.Fprintln(env.Out, token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")

	return cmd
}
