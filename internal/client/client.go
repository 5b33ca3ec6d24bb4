// Package client implements the paw.Client interface on top of the internal
// transport.
package client

import (
	"fmt"

	"github.com/paw-tools/paw/internal/auth"
	"github.com/paw-tools/paw/internal/constants"
	"github.com/paw-tools/paw/internal/http"
	"github.com/paw-tools/paw/pkg/paw"
)

// Client implements the paw.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	username     string
	logger       paw.Logger

	webapps paw.WebappsClient
	cpu     paw.CPUClient
}

// New creates a client from an already-normalized config. Most callers
// should use pawclient.New, which applies host and token defaulting first.
func New(config *paw.Config) (*Client, error) {
	if config == nil {
		return nil, paw.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, paw.ErrHostRequired
	}

	if config.Username == "" {
		return nil, paw.ErrUsernameRequired
	}

	tokenManager := createTokenManager(config)
	httpClient := http.NewClient(config.Host, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		username:     config.Username,
		logger:       config.Logger,
	}

	client.webapps = NewWebappsClient(httpClient, tokenManager, config.Username, config.Logger)
	client.cpu = NewCPUClient(httpClient, config.Username)

	return client, nil
}

// createTokenManager picks the token source: an explicit token wins, the
// environment is consulted otherwise.
func createTokenManager(config *paw.Config) auth.TokenManager {
	if config.APIToken != "" {
		return auth.NewStaticTokenManager(config.APIToken)
	}

	return &auth.EnvTokenManager{}
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *paw.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Webapps implements paw.Client.Webapps.
func (c *Client) Webapps() paw.WebappsClient {
	return c.webapps
}

// CPU implements paw.Client.CPU.
func (c *Client) CPU() paw.CPUClient {
	return c.cpu
}

// userPath returns the per-user API root for a username.
func userPath(username string) string {
	return fmt.Sprintf(constants.UserAPIRoot, username)
}

// loggerAdapter adapts paw.Logger to http.Logger.
type loggerAdapter struct {
	logger paw.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
