package main

import (
	"fmt"
	"time"

	"studio-admin/internal/config"
	"studio-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		username string
		userID   string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an administrator JWT signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			utils.SetSecret(cfg.JWTSecret)

			if userID == "" {
				userID = uuid.NewString()
			}
			token, err := utils.GenerateToken(userID, username, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "administrator name")
	cmd.Flags().StringVar(&userID, "user-id", "", "administrator id (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
