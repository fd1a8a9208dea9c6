package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kuali/docs-mcp/internal/logging"
)

// Environment variables recognized for service account credentials. The
// inline key takes precedence over the key file.
const (
	EnvServiceAccountKey     = "GOOGLE_SERVICE_ACCOUNT_KEY"
	EnvServiceAccountKeyFile = "GOOGLE_SERVICE_ACCOUNT_KEY_FILE"
)

// CredentialsProvider supplies the raw service account key JSON used to
// authenticate against the Google APIs
type CredentialsProvider interface {
	KeyJSON() ([]byte, error)
}

// EnvCredentialsProvider reads the service account key from the environment,
// either inline via GOOGLE_SERVICE_ACCOUNT_KEY or from the file named by
// GOOGLE_SERVICE_ACCOUNT_KEY_FILE
type EnvCredentialsProvider struct{}

// NewEnvCredentialsProvider creates a provider backed by the process
// environment
func NewEnvCredentialsProvider() *EnvCredentialsProvider {
	return &EnvCredentialsProvider{}
}

// KeyJSON returns the service account key JSON from the environment
func (p *EnvCredentialsProvider) KeyJSON() ([]byte, error) {
	if key := os.Getenv(EnvServiceAccountKey); key != "" {
		return []byte(key), nil
	}

	if keyFile := os.Getenv(EnvServiceAccountKeyFile); keyFile != "" {
		key, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account key file %s: %w", keyFile, err)
		}
		return key, nil
	}

	return nil, fmt.Errorf("%s or %s is required", EnvServiceAccountKey, EnvServiceAccountKeyFile)
}

// HasCredentials reports whether service account credentials are available
// from the provider
func HasCredentials(provider CredentialsProvider) bool {
	if provider == nil {
		return false
	}
	_, err := provider.KeyJSON()
	return err == nil
}

// NewHTTPClient builds an authenticated HTTP client from the provider's
// service account key, authorized for the Drive and Docs scopes
func NewHTTPClient(ctx context.Context, provider CredentialsProvider) (*http.Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("credentials provider cannot be nil")
	}

	keyJSON, err := provider.KeyJSON()
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, keyJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	slog.Debug("service account credentials loaded",
		logging.Operation("authenticate"), "key", logging.SanitizeKey(string(keyJSON)))

	client := oauth2.NewClient(ctx, creds.TokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}
