package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the platform",
		Long:  "Authenticate with email and password and store the access token in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if email == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				email = readLine(reader)
			}

			if email == "" {
				return constants.ErrEmailRequired
			}

			if password == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")

				var err error

				password, err = readPassword(reader)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}

			if password == "" {
				return constants.ErrPasswordRequired
			}

			client := NewClient()

			resp, err := client.Auth().Login(cmd.Context(), &careapi.LoginRequest{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			config := loadConfig()
			config.API = client.Config().BaseURL
			config.Token = resp.AccessToken
			config.RefreshToken = resp.RefreshToken
			config.Email = email

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("token") == "" {
				return constants.ErrNotAuthenticated
			}

			client := NewClient()

			// The stored token is cleared even when the server rejects it.
			err := client.Auth().Logout(cmd.Context())
			if err != nil && !careapi.IsAuthenticationFailed(err) {
				logger.Warn().Err(err).Msg("Server-side logout failed")
			}

			config := loadConfig()
			config.Token = ""
			config.RefreshToken = ""

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// NewRefreshCommand creates the token refresh command
func NewRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the stored refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.RefreshToken == "" {
				return constants.ErrNotAuthenticated
			}

			client := NewClient()

			resp, err := client.Auth().Refresh(cmd.Context(), &careapi.RefreshTokenRequest{RefreshToken: config.RefreshToken})
			if err != nil {
				return describeError("failed to refresh token", err)
			}

			config.Token = resp.AccessToken
			if resp.RefreshToken != "" {
				config.RefreshToken = resp.RefreshToken
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Token refreshed")

			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("token") == "" {
				return constants.ErrNotAuthenticated
			}

			client := NewClient()

			user, err := client.Auth().Me(cmd.Context())
			if err != nil {
				return describeError("failed to get current user", err)
			}

			return render(cmd, user, propertyHeader, userProperties(user))
		},
	}
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}

	return strings.TrimSpace(line)
}

// readPassword reads without echo from a terminal, and falls back to a plain
// line read when stdin is piped.
func readPassword(reader *bufio.Reader) (string, error) {
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		bytePassword, err := term.ReadPassword(fd)
		if err != nil {
			return "", err
		}

		return string(bytePassword), nil
	}

	return readLine(reader), nil
}
