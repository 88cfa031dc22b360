package github

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cli/oauth"
	"github.com/cli/oauth/api"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

const (
	// DefaultGitHubHost is the host used when the config does not name one.
	DefaultGitHubHost = "https://github.com"

	// DefaultScopes covers issue and PR operations.
	DefaultScopes = "repo"
)

// OAuthConfig configures the device flow.
type OAuthConfig struct {
	ClientID string   // OAuth app client ID, required
	Scopes   []string // defaults to DefaultScopes
	HostURL  string   // defaults to DefaultGitHubHost; set for GitHub Enterprise
}

// DeviceAuth runs the OAuth device flow: it prints a one-time code, waits
// for the user to authorize at GitHub's verification URL, and returns the
// granted access token. Progress messages go to stdout.
func DeviceAuth(ctx context.Context, cfg OAuthConfig, stdout io.Writer) (*api.AccessToken, error) {
	if cfg.ClientID == "" {
		return nil, forgeerrors.NewGitHubError("DeviceAuth", "github.client_id must be set for OAuth device flow")
	}
	if err := ctx.Err(); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("DeviceAuth", "authentication canceled", err)
	}

	flow, err := newDeviceFlow(cfg, stdout)
	if err != nil {
		return nil, err
	}

	// The flow polls GitHub until the user completes authorization or the
	// device code expires.
	token, err := flow.DeviceFlow()
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("DeviceAuth", "device flow failed", err)
	}
	return token, nil
}

// newDeviceFlow builds the cli/oauth flow from config, filling in host and
// scope defaults.
func newDeviceFlow(cfg OAuthConfig, stdout io.Writer) (*oauth.Flow, error) {
	hostURL := cfg.HostURL
	if hostURL == "" {
		hostURL = DefaultGitHubHost
	}
	host, err := oauth.NewGitHubHost(hostURL)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("DeviceAuth", "invalid GitHub host URL", err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{DefaultScopes}
	}

	return &oauth.Flow{
		Host:     host,
		ClientID: cfg.ClientID,
		Scopes:   scopes,
		Stdout:   stdout,
		Stdin:    os.Stdin,
		DisplayCode: func(code, verificationURL string) error {
			fmt.Fprintf(stdout, "\nYour one-time code: %s\n", code)
			fmt.Fprintf(stdout, "Press Enter to open %s in your browser...\n", verificationURL)
			return nil
		},
	}, nil
}
