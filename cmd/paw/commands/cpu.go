package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCPUCommand creates the cpu command.
func NewCPUCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show CPU usage against the daily quota",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			usage, err := client.CPU().GetUsage(context.Background())
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(usage)
			case OutputFormatYAML:
				return renderYAML(usage)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Daily limit (s)", fmt.Sprintf("%d", usage.DailyCPULimitSeconds))
				_ = table.Append("Used today (s)", fmt.Sprintf("%.2f", usage.DailyCPUTotalUsageSeconds))
				_ = table.Append("Next reset", usage.NextResetTime)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
