package pawclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paw-tools/paw/pkg/paw"
	"github.com/paw-tools/paw/pkg/pawclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := pawclient.New(nil)
		require.ErrorIs(t, err, paw.ErrConfigRequired)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := pawclient.New(&paw.Config{})
		require.ErrorIs(t, err, paw.ErrUsernameRequired)
	})

	t.Run("explicit host wins over environment", func(t *testing.T) {
		t.Setenv("PYTHONANYWHERE_SITE", "https://eu.pythonanywhere.com")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode([]paw.Webapp{})
		}))
		defer server.Close()

		apiClient, err := pawclient.New(&paw.Config{
			Host:     server.URL,
			Username: "alice",
			APIToken: "test-token",
		})
		require.NoError(t, err)

		_, err = apiClient.Webapps().List(context.Background())
		require.NoError(t, err)
	})

	t.Run("host falls back to environment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode([]paw.Webapp{})
		}))
		defer server.Close()

		t.Setenv("PYTHONANYWHERE_SITE", server.URL)

		apiClient, err := pawclient.New(&paw.Config{
			Username: "alice",
			APIToken: "test-token",
		})
		require.NoError(t, err)

		_, err = apiClient.Webapps().List(context.Background())
		require.NoError(t, err)
	})

	t.Run("token falls back to environment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Token env-token", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode([]paw.Webapp{})
		}))
		defer server.Close()

		t.Setenv("API_TOKEN", "env-token")

		apiClient, err := pawclient.New(&paw.Config{
			Host:     server.URL,
			Username: "alice",
		})
		require.NoError(t, err)

		_, err = apiClient.Webapps().List(context.Background())
		require.NoError(t, err)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Setenv("PYTHONANYWHERE_SITE", "")

	apiClient, err := pawclient.NewWithToken("alice", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, apiClient.Webapps())
	assert.NotNil(t, apiClient.CPU())
}

func TestNewWithHost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v0/user/alice/webapps/", request.URL.Path)
		_ = json.NewEncoder(writer).Encode([]paw.Webapp{})
	}))
	defer server.Close()

	// A trailing slash on the host must not produce a double slash in paths.
	apiClient, err := pawclient.NewWithHost(server.URL+"/", "alice", "test-token")
	require.NoError(t, err)

	_, err = apiClient.Webapps().List(context.Background())
	require.NoError(t, err)
}
