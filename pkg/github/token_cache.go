package github

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

const (
	// KeyringService is the keychain service name under which forge stores
	// its GitHub credentials.
	KeyringService = "forge-github"
	// KeyringAccount is the keychain account name for the OAuth token.
	KeyringAccount = "oauth-token"

	// TokenCacheDir holds the file fallback, relative to the home directory.
	TokenCacheDir = ".config/forge" //nolint:gosec // Directory name, not a credential
	// TokenCacheFile is the file fallback name.
	TokenCacheFile = "github-token.json" //nolint:gosec // Filename, not a credential
)

// TokenCache stores the OAuth token between invocations. Get returns
// (nil, nil) when no token is cached; Clear is idempotent.
type TokenCache interface {
	Get() (*oauth2.Token, error)
	Set(token *oauth2.Token) error
	Clear() error
}

// NewTokenCache returns the keychain-backed cache when the platform keyring
// accepts writes, and the file-backed cache otherwise (headless hosts, CI).
func NewTokenCache() TokenCache {
	if keyringAvailable() {
		return &KeychainTokenCache{service: KeyringService, account: KeyringAccount}
	}
	return &FileTokenCache{path: tokenCachePath()}
}

// keyringAvailable reports whether the platform keyring accepts writes,
// verified with a throwaway entry.
func keyringAvailable() bool {
	service := KeyringService + "-check"
	if err := keyring.Set(service, "check", "check"); err != nil {
		return false
	}
	_ = keyring.Delete(service, "check")
	return true
}

// cachedToken is the serialized token form shared by both backends.
type cachedToken struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

func fromOAuth2Token(t *oauth2.Token) *cachedToken {
	return &cachedToken{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry,
	}
}

func (c *cachedToken) toOAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    c.TokenType,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}

// encodeToken serializes a token for storage. op names the calling
// operation for error reporting.
func encodeToken(op string, token *oauth2.Token) ([]byte, error) {
	data, err := json.Marshal(fromOAuth2Token(token))
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause(op, "failed to serialize token", err)
	}
	return data, nil
}

// decodeToken parses stored bytes back into a token.
func decodeToken(op string, data []byte) (*oauth2.Token, error) {
	var cached cachedToken
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause(op, "failed to parse cached token", err)
	}
	return cached.toOAuth2Token(), nil
}

// KeychainTokenCache stores the token in the platform keyring (macOS
// keychain, Linux secret service, Windows credential manager).
type KeychainTokenCache struct {
	service string
	account string
}

func (k *KeychainTokenCache) Get() (*oauth2.Token, error) {
	data, err := keyring.Get(k.service, k.account)
	if err != nil {
		if err == keyring.ErrNotFound {
			return nil, nil
		}
		return nil, forgeerrors.NewGitHubErrorWithCause("TokenCache.Get", "failed to read from keychain", err)
	}
	return decodeToken("TokenCache.Get", []byte(data))
}

func (k *KeychainTokenCache) Set(token *oauth2.Token) error {
	data, err := encodeToken("TokenCache.Set", token)
	if err != nil {
		return err
	}
	if err := keyring.Set(k.service, k.account, string(data)); err != nil {
		return forgeerrors.NewGitHubErrorWithCause("TokenCache.Set", "failed to save to keychain", err)
	}
	return nil
}

func (k *KeychainTokenCache) Clear() error {
	if err := keyring.Delete(k.service, k.account); err != nil && err != keyring.ErrNotFound {
		return forgeerrors.NewGitHubErrorWithCause("TokenCache.Clear", "failed to clear keychain", err)
	}
	return nil
}

// FileTokenCache stores the token in a mode-0600 file under the user's
// config directory.
type FileTokenCache struct {
	path string
}

func (f *FileTokenCache) Get() (*oauth2.Token, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, forgeerrors.NewGitHubErrorWithCause("TokenCache.Get", "failed to read token file", err)
	}
	return decodeToken("TokenCache.Get", data)
}

func (f *FileTokenCache) Set(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return forgeerrors.NewGitHubErrorWithCause("TokenCache.Set", "failed to create config directory", err)
	}
	data, err := encodeToken("TokenCache.Set", token)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return forgeerrors.NewGitHubErrorWithCause("TokenCache.Set", "failed to write token file", err)
	}
	return nil
}

func (f *FileTokenCache) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return forgeerrors.NewGitHubErrorWithCause("TokenCache.Clear", "failed to remove token file", err)
	}
	return nil
}

func tokenCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, TokenCacheDir, TokenCacheFile)
}
