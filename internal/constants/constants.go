package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry backoff bounds. Retries are off unless explicitly configured; these
// bound the backoff when they are.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API hosts and environment variables.
const (
	// DefaultHost is the public API host.
	DefaultHost = "www.pythonanywhere.com"

	// SiteEnvVar overrides the API host.
	SiteEnvVar = "PYTHONANYWHERE_SITE"

	// TokenEnvVar carries the API token.
	TokenEnvVar = "API_TOKEN"
)

// Resource flavors under the per-user API root.
const (
	FlavorCPU     = "cpu"
	FlavorFiles   = "files"
	FlavorWebapps = "webapps"
)

// UserAPIRoot is the per-user API prefix; the argument is the username.
const UserAPIRoot = "/api/v0/user/%s/"

// LogDirectory is the server-side directory holding webapp logs.
const LogDirectory = "/var/log/"
