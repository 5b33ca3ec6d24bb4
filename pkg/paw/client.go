package paw

import (
	"context"
	"time"
)

// Client is the top-level entry point to the PythonAnywhere API.
type Client interface {
	Webapps() WebappsClient
	CPU() CPUClient
}

// WebappsClient manages the lifecycle and ancillary resources of webapps.
type WebappsClient interface {
	// List returns all webapps for the configured account.
	List(ctx context.Context) ([]Webapp, error)

	// Get retrieves one webapp by domain.
	Get(ctx context.Context, ref WebappRef) (*Webapp, error)

	// SanityChecks validates local preconditions before mutating remote
	// state: an API token must be available, and unless nuke is set, no
	// webapp may already exist for the domain.
	SanityChecks(ctx context.Context, ref WebappRef, nuke bool) error

	// Create creates a webapp and then patches its virtualenv path and
	// source directory onto it. With req.Nuke, any existing webapp for the
	// domain is deleted first (best-effort).
	Create(ctx context.Context, req *WebappCreateRequest) error

	// Patch updates arbitrary fields on the webapp and returns the updated
	// representation.
	Patch(ctx context.Context, ref WebappRef, fields map[string]interface{}) (*Webapp, error)

	// Delete removes the webapp. Success requires HTTP 204 exactly.
	Delete(ctx context.Context, ref WebappRef) error

	// Reload restarts the webapp. A 409 caused by a missing CNAME is
	// downgraded to a warning; every other failure is an error.
	Reload(ctx context.Context, ref WebappRef) error

	// CreateStaticMapping routes a URL path prefix to a directory. The
	// response status is not inspected beyond authentication failures.
	CreateStaticMapping(ctx context.Context, ref WebappRef, urlPath, directoryPath string) error

	// AddDefaultStaticMappings creates the conventional /static/ and /media/
	// mappings under projectPath.
	AddDefaultStaticMappings(ctx context.Context, ref WebappRef, projectPath string) error

	// SetSSL installs a certificate and private key.
	SetSSL(ctx context.Context, ref WebappRef, certificate, privateKey string) error

	// GetSSLInfo retrieves certificate details with the expiry parsed into a
	// time.Time.
	GetSSLInfo(ctx context.Context, ref WebappRef) (*SSLInfo, error)

	// GetLogInfo lists the rotation indices present for each log category.
	GetLogInfo(ctx context.Context, ref WebappRef) (LogSet, error)

	// DeleteLog removes one log file, selected by category and rotation
	// index.
	DeleteLog(ctx context.Context, ref WebappRef, logType LogType, index int) error
}

// CPUClient reports CPU usage for the account.
type CPUClient interface {
	GetUsage(ctx context.Context) (*CPUUsage, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a paw.Client.
//
// Host names the API host (e.g., "www.pythonanywhere.com" or
// "www.eu.pythonanywhere.com"). pawclient.New normalizes it by adding
// "https://" when no scheme is present and trimming a trailing slash; when
// empty, the PYTHONANYWHERE_SITE environment variable and then the default
// host are used.
//
// APIToken is sent as "Authorization: Token <token>". When empty, pawclient
// falls back to the API_TOKEN environment variable. Requests without a token
// are still sent; operations that require authentication surface the
// resulting 401, and SanityChecks reports the missing token up front.
//
// Retries are disabled unless RetryMax is set; every operation is a single
// request-response round trip by default. Per-request timeouts should be
// controlled via the context passed to client methods.
type Config struct {
	// Required fields
	Host     string
	Username string

	// Authentication
	APIToken string

	// Optional configurations
	HTTPTimeout  time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Debug        bool
	Logger       Logger
	UserAgent    string
}
