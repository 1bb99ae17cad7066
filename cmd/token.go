package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the HTTP API",
	Long: "Issue a bearer token signed with DISCERN_JWT_SECRET. The token identifies the\n" +
		"user whose progress and reports API requests act on. --insecure-dev signs with the\n" +
		"development secret accepted by 'discern serve --insecure-dev'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("user-id")
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("--user-id is required")
		}
		if ttl <= 0 {
			return fmt.Errorf("--ttl must be positive")
		}

		insecure, _ := cmd.Flags().GetBool("insecure-dev")
		signer, err := tokenSigner(os.Getenv("DISCERN_JWT_SECRET"), insecure)
		if err != nil {
			return err
		}
		tok, err := signer.Sign(auth.User{ID: id, Email: email, Name: name}, ttl)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func tokenSigner(secret string, insecureDev bool) (*auth.Signer, error) {
	if strings.TrimSpace(secret) == "" {
		if !insecureDev {
			return nil, fmt.Errorf("DISCERN_JWT_SECRET is not set (use --insecure-dev for a development token)")
		}
		secret = auth.DevSecret
	}
	return auth.NewSigner(secret)
}

func init() {
	tokenCmd.Flags().String("user-id", "", "User ID the token identifies")
	tokenCmd.Flags().String("email", "", "E-mail address, checked against DISCERN_ADMIN_EMAILS")
	tokenCmd.Flags().String("name", "", "Display name used in reports")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	tokenCmd.Flags().Bool("insecure-dev", false, "Sign with the development secret when DISCERN_JWT_SECRET is unset")
}
