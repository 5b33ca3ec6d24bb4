package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paw-tools/paw/internal/client"
	"github.com/paw-tools/paw/pkg/paw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, paw.ErrConfigRequired)
	})

	t.Run("missing host", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&paw.Config{Username: "alice"})
		require.ErrorIs(t, err, paw.ErrHostRequired)
	})

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&paw.Config{Host: "https://www.pythonanywhere.com"})
		require.ErrorIs(t, err, paw.ErrUsernameRequired)
	})

	t.Run("wires resource clients", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&paw.Config{
			Host:     "https://www.pythonanywhere.com",
			Username: "alice",
			APIToken: "test-token",
		})
		require.NoError(t, err)
		assert.NotNil(t, apiClient.Webapps())
		assert.NotNil(t, apiClient.CPU())
	})
}

func TestClient_TokenFromEnvironment(t *testing.T) {
	t.Setenv("API_TOKEN", "env-token")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Token env-token", request.Header.Get("Authorization"))
		_ = json.NewEncoder(writer).Encode([]paw.Webapp{})
	}))
	defer server.Close()

	apiClient, err := client.New(&paw.Config{
		Host:     server.URL,
		Username: "alice",
	})
	require.NoError(t, err)

	_, err = apiClient.Webapps().List(context.Background())
	require.NoError(t, err)
}
