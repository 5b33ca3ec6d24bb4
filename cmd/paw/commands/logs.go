package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/paw-tools/paw/pkg/paw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLogsCommand creates the logs command group.
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Manage webapp log files",
	}

	cmd.AddCommand(newLogsListCommand())
	cmd.AddCommand(newLogsDeleteCommand())

	return cmd
}

func newLogsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list DOMAIN",
		Short: "List log files by category and rotation index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			domain := args[0]

			logs, err := client.Webapps().GetLogInfo(context.Background(), paw.Ref(domain))
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(logs)
			case OutputFormatYAML:
				return renderYAML(logs)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Type", "Index", "Path")

				for _, logType := range paw.LogTypes {
					for _, index := range logs[logType] {
						_ = table.Append(string(logType), strconv.Itoa(index),
							paw.LogFilePath(domain, logType, index))
					}
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newLogsDeleteCommand() *cobra.Command {
	var (
		index int
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete DOMAIN TYPE",
		Short: "Delete a log file",
		Long: `Delete one log file by category (access, error, or server) and rotation
index: 0 is the current log, 1 the most recent rotation, higher indices are
gzipped archives.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]
			logType := paw.LogType(args[1])

			path := paw.LogFilePath(domain, logType, index)

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete %s? (y/N): ", path)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Webapps().DeleteLog(context.Background(), paw.Ref(domain), logType, index)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Deleted %s\n", path)

			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "rotation index (0 is the current log)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
