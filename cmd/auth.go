package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/github"
)

// authCmd groups authentication subcommands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage GitHub authentication",
	Long: `Manage GitHub authentication for forge.

Subcommands:
  login:  Authenticate with GitHub via the OAuth device flow
  logout: Remove the cached OAuth token
  status: Show the current authentication state`,
}

// authLoginCmd runs the OAuth device flow and caches the token.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with GitHub via the OAuth device flow",
	Long: `Authenticate with GitHub using the OAuth device flow.

Requires github.client_id in the config. The resulting token is stored
in the system keychain, falling back to a file under ~/.config/forge.

Example:
  forge auth login`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthLogin()
	},
}

// authLogoutCmd clears the cached OAuth token.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the cached OAuth token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthLogout()
	},
}

// authStatusCmd reports the current authentication state.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthStatus()
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
}

func runAuthLogin() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if cfg.GitHub.ClientID == "" {
		err := forgeerrors.NewConfigError("github.client_id",
			"OAuth login requires a GitHub OAuth app client ID")
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	apiToken, err := github.DeviceAuth(context.Background(), github.OAuthConfig{
		ClientID: cfg.GitHub.ClientID,
		Scopes:   []string{"repo", "read:org"},
	}, os.Stdout)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	cache := github.NewTokenCache()
	token := &oauth2.Token{
		AccessToken: apiToken.Token,
		TokenType:   apiToken.Type,
	}
	if err := cache.Set(token); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: authenticated, but could not cache token: %v\n", err)
	}

	fmt.Println("Authenticated with GitHub.")
	return nil
}

func runAuthLogout() error {
	cache := github.NewTokenCache()
	if err := cache.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear cached token")
	}
	fmt.Println("Logged out.")
	return nil
}

func runAuthStatus() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	ghClient, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	if !ghClient.IsAuthenticated() {
		fmt.Println("Not authenticated. Run 'forge auth login' or set GITHUB_TOKEN.")
		return nil
	}

	user, err := ghClient.CurrentUser(context.Background())
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	fmt.Printf("Authenticated as %s\n", user)
	return nil
}
