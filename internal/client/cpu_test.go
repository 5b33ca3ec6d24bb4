package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paw-tools/paw/internal/auth"
	"github.com/paw-tools/paw/internal/client"
	pawhttp "github.com/paw-tools/paw/internal/http"
	"github.com/paw-tools/paw/pkg/paw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUClient_GetUsage(t *testing.T) {
	t.Parallel()
	t.Run("successful get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "/api/v0/user/alice/cpu/", request.URL.Path)
			assert.Equal(t, "Token test-token", request.Header.Get("Authorization"))

			_ = json.NewEncoder(writer).Encode(paw.CPUUsage{
				DailyCPULimitSeconds:      100,
				DailyCPUTotalUsageSeconds: 42.5,
				NextResetTime:             "2026-08-24T00:00:00",
			})
		}))
		defer server.Close()

		httpClient := pawhttp.NewClient(server.URL, auth.NewStaticTokenManager("test-token"))
		cpuClient := client.NewCPUClient(httpClient, "alice")

		usage, err := cpuClient.GetUsage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 100, usage.DailyCPULimitSeconds)
		assert.InDelta(t, 42.5, usage.DailyCPUTotalUsageSeconds, 0.001)
		assert.Equal(t, "2026-08-24T00:00:00", usage.NextResetTime)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"detail": "Invalid token."}`))
		}))
		defer server.Close()

		httpClient := pawhttp.NewClient(server.URL, auth.NewStaticTokenManager("bad-token"))
		cpuClient := client.NewCPUClient(httpClient, "alice")

		_, err := cpuClient.GetUsage(context.Background())
		require.Error(t, err)
		assert.True(t, paw.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "Invalid token.")
	})
}
