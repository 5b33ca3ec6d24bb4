package auth_test

import (
	"context"
	"testing"

	"github.com/paw-tools/paw/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("my-secret-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-secret-token", token)
}

func TestEnvTokenManager(t *testing.T) {
	t.Run("reads token from environment", func(t *testing.T) {
		t.Setenv("API_TOKEN", "env-token")

		manager := &auth.EnvTokenManager{}

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "env-token", token)
	})

	t.Run("empty when unset", func(t *testing.T) {
		t.Setenv("API_TOKEN", "")

		manager := &auth.EnvTokenManager{}

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("reads environment on every call", func(t *testing.T) {
		t.Setenv("API_TOKEN", "first")

		manager := &auth.EnvTokenManager{}

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "first", token)

		t.Setenv("API_TOKEN", "second")

		token, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "second", token)
	})
}
