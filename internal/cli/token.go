package cli

import (
	"fmt"
	"time"

	"school-schedule/pkg/middleware/mwAuth"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an API token with the configured secret",
		Run:   runToken,
	}

	cmd.Flags().String("user", "", "User id (required)")
	cmd.Flags().StringSlice("role", nil, "Role, repeatable")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime, 0 for no expiry")
	cmd.MarkFlagRequired("user")

	RootCmd.AddCommand(cmd)
}

func runToken(cmd *cobra.Command, args []string) {
	user, _ := cmd.Flags().GetString("user")
	roles, _ := cmd.Flags().GetStringSlice("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	token, err := mwAuth.IssueToken([]byte(cfg.Auth.JWTSecret), user, roles, ttl)
	if err != nil {
		exitErr("token", err)
	}

	fmt.Println(token)
}
