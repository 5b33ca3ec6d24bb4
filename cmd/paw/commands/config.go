package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change values in the paw config file",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"show"},
		Short:   "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if token != "" {
				token = "***"
			}

			effective := map[string]string{
				"user":     viper.GetString("user"),
				"token":    token,
				"api-host": viper.GetString("api-host"),
				"output":   viper.GetString("output"),
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(effective)
			case OutputFormatYAML:
				return renderYAML(effective)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range []string{"user", "token", "api-host", "output"} {
					value := effective[key]
					if value == "" {
						value = NotAvailable
					}

					_ = table.Append(key, value)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			switch key {
			case "user", "token", "api-host", "output":
				fmt.Fprintln(os.Stdout, viper.GetString(key))
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, _, err := loadCLIConfig()
			if err != nil {
				return err
			}

			switch key {
			case "user":
				config.User = value
			case "token":
				config.Token = value
			case "api-host":
				config.APIHost = value
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			path, err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s in %s\n", key, path)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, _, err := loadCLIConfig()
			if err != nil {
				return err
			}

			switch key {
			case "user":
				config.User = ""
			case "token":
				config.Token = ""
			case "api-host":
				config.APIHost = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			path, err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Unset %s in %s\n", key, path)

			return nil
		},
	}
}
