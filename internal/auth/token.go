// Package auth resolves the API token attached to outgoing requests.
package auth

import (
	"context"
	"os"

	"github.com/paw-tools/paw/internal/constants"
)

// TokenManager supplies the token for the Authorization header. An empty
// token means the request is sent unauthenticated.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager provides a fixed token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

// EnvTokenManager reads the token from the API_TOKEN environment variable on
// every call, so a token exported after client construction is still picked
// up.
type EnvTokenManager struct{}

// GetToken implements TokenManager.
func (m *EnvTokenManager) GetToken(_ context.Context) (string, error) {
	return os.Getenv(constants.TokenEnvVar), nil
}
