package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func newAuthCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}

	cmd.AddCommand(newAuthLoginCmd(client))
	cmd.AddCommand(newAuthTokenCmd())
	return cmd
}

func newAuthLoginCmd(client *Client) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password and print the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result struct {
				Success    bool           `json:"success"`
				User       map[string]any `json:"user"`
				RedirectTo string         `json:"redirect_to"`
			}
			body := map[string]string{"email": email, "password": password}
			if err := client.Post(cmd.Context(), "/api/auth/login", body, &result); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, result)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAuthTokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		secret  string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a dev-mode HS256 access token",
		Example: `  # Generate a token for a local server configured with SUPABASE_JWT_SECRET
  phoenix auth token --sub 2b8e... --email dev@example.com --secret devsecret`,
		RunE: func(_ *cobra.Command, _ []string) error {
			now := time.Now()
			claims := jwt.MapClaims{
				"sub":   subject,
				"email": email,
				"iat":   now.Unix(),
				"exp":   now.Add(expires).Unix(),
			}

			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := token.SignedString([]byte(secret))
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "Subject claim (user id)")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret (HS256)")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token expiry duration")
	_ = cmd.MarkFlagRequired("sub")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}
