package pawclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/paw-tools/paw/internal/client"
	"github.com/paw-tools/paw/internal/constants"
	"github.com/paw-tools/paw/pkg/paw"
)

// New creates a new PythonAnywhere API client with host and token defaulting.
func New(config *paw.Config) (paw.Client, error) {
	if config == nil {
		return nil, paw.ErrConfigRequired
	}

	if config.Username == "" {
		return nil, paw.ErrUsernameRequired
	}

	host := config.Host
	if host == "" {
		host = os.Getenv(constants.SiteEnvVar)
	}

	if host == "" {
		host = constants.DefaultHost
	}

	config.Host = normalizeHost(host)

	if config.APIToken == "" {
		config.APIToken = os.Getenv(constants.TokenEnvVar)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeHost adds a scheme when missing and trims a trailing slash.
func normalizeHost(host string) string {
	host = strings.TrimSuffix(host, "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	return host
}

// NewWithToken creates a new client for a username with an explicit token.
func NewWithToken(username, token string) (paw.Client, error) {
	return New(&paw.Config{
		Username: username,
		APIToken: token,
	})
}

// NewWithHost creates a new client against a non-default API host.
func NewWithHost(host, username, token string) (paw.Client, error) {
	return New(&paw.Config{
		Host:     host,
		Username: username,
		APIToken: token,
	})
}
