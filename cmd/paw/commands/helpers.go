package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paw-tools/paw/pkg/paw"
	"github.com/paw-tools/paw/pkg/pawclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrUsernameNotConfigured = errors.New("username is not configured (use --user, 'paw configure', or the config file)")
	ErrDomainRequired        = errors.New("domain is required")
	ErrCertificateRequired   = errors.New("certificate and private key files are required (--cert and --key)")
	ErrConfigKeyUnknown      = errors.New("unknown config key")
)

// CreateClient builds an API client from the effective CLI configuration.
func CreateClient() (paw.Client, error) {
	username := viper.GetString("user")
	if username == "" {
		return nil, ErrUsernameNotConfigured
	}

	config := &paw.Config{
		Host:     viper.GetString("api-host"),
		Username: username,
		APIToken: viper.GetString("token"),
	}

	if viper.GetBool("verbose") {
		config.Logger = &stderrLogger{}
		config.Debug = true
	}

	client, err := pawclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}

// renderJSON writes data as indented JSON to stdout.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data as YAML to stdout.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// stderrLogger implements paw.Logger for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// boolString renders a boolean for table output.
func boolString(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
