package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paw-tools/paw/internal/constants"
	"github.com/paw-tools/paw/internal/http"
	"github.com/paw-tools/paw/pkg/paw"
)

// CPUClient implements paw.CPUClient.
type CPUClient struct {
	httpClient *http.Client
	username   string
}

// NewCPUClient creates a new CPU resource client.
func NewCPUClient(httpClient *http.Client, username string) *CPUClient {
	return &CPUClient{
		httpClient: httpClient,
		username:   username,
	}
}

// GetUsage implements paw.CPUClient.GetUsage.
func (c *CPUClient) GetUsage(ctx context.Context) (*paw.CPUUsage, error) {
	resp, err := c.httpClient.Get(ctx, userPath(c.username)+constants.FlavorCPU+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting CPU usage: %w", err)
	}

	var usage paw.CPUUsage

	err = json.Unmarshal(resp.Body, &usage)
	if err != nil {
		return nil, fmt.Errorf("parsing CPU usage response: %w", err)
	}

	return &usage, nil
}
