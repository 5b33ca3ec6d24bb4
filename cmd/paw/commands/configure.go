package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paw-tools/paw/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// cliConfig is the on-disk shape of ~/.paw/config.yml.
type cliConfig struct {
	User    string `yaml:"user,omitempty"`
	Token   string `yaml:"token,omitempty"`
	APIHost string `yaml:"api-host,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// NewConfigureCommand creates the interactive configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Configure credentials interactively",
		Long: `Prompt for the PythonAnywhere username and API token and save them
to the config file. The token is read without echoing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			fmt.Fprintf(os.Stdout, "Username [%s]: ", viper.GetString("user"))

			username, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading username: %w", err)
			}

			username = strings.TrimSpace(username)
			if username == "" {
				username = viper.GetString("user")
			}

			if username == "" {
				return ErrUsernameNotConfigured
			}

			fmt.Fprint(os.Stdout, "API token (input hidden): ")

			tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))

			fmt.Fprintln(os.Stdout)

			if err != nil {
				return fmt.Errorf("reading API token: %w", err)
			}

			token := strings.TrimSpace(string(tokenBytes))
			if token == "" {
				token = viper.GetString("token")
			}

			config := cliConfig{
				User:    username,
				Token:   token,
				APIHost: viper.GetString("api-host"),
			}

			path, err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Configuration saved to %s\n", path)

			return nil
		},
	}
}

// configFilePath returns the effective config file location, honoring the
// --config flag.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".paw", "config.yml"), nil
}

// saveCLIConfig writes the config file with owner-only permissions (it holds
// the API token).
func saveCLIConfig(config cliConfig) (string, error) {
	path, err := configFilePath()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}

// loadCLIConfig reads the config file, returning a zero config when it does
// not exist yet.
func loadCLIConfig() (cliConfig, string, error) {
	var config cliConfig

	path, err := configFilePath()
	if err != nil {
		return config, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, path, nil
		}

		return config, path, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, path, fmt.Errorf("parsing config file: %w", err)
	}

	return config, path, nil
}
