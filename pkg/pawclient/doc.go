// Package pawclient provides the main entry point for creating PythonAnywhere
// API clients.
//
// New applies configuration defaults before handing off to the internal
// implementation: the API host falls back to the PYTHONANYWHERE_SITE
// environment variable and then to www.pythonanywhere.com, the scheme is
// added when missing, and the API token falls back to the API_TOKEN
// environment variable.
//
//	cli, err := pawclient.New(&paw.Config{Username: "alice"})
//
// Convenience constructors cover the common cases:
//
//	cli, err := pawclient.NewWithToken("alice", "token-value")
package pawclient
