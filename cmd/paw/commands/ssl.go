package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/paw-tools/paw/pkg/paw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSSLCommand creates the ssl command group.
func NewSSLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssl",
		Short: "Manage webapp SSL certificates",
	}

	cmd.AddCommand(newSSLInfoCommand())
	cmd.AddCommand(newSSLSetCommand())

	return cmd
}

func newSSLInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info DOMAIN",
		Short: "Show certificate details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			info, err := client.Webapps().GetSSLInfo(context.Background(), paw.Ref(args[0]))
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(info)
			case OutputFormatYAML:
				return renderYAML(info)
			default:
				notAfter := NotAvailable
				if !info.NotAfter.IsZero() {
					notAfter = info.NotAfter.Format(time.RFC3339)
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Subject", info.SubjectName)
				_ = table.Append("Issuer", info.IssuerName)
				_ = table.Append("Expires", notAfter)
				_ = table.Append("Alternate names", strings.Join(info.SubjectAlternateNames, ", "))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newSSLSetCommand() *cobra.Command {
	var certFile, keyFile string

	cmd := &cobra.Command{
		Use:   "set DOMAIN",
		Short: "Install a certificate and private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if certFile == "" || keyFile == "" {
				return ErrCertificateRequired
			}

			certificate, err := os.ReadFile(certFile)
			if err != nil {
				return fmt.Errorf("reading certificate file: %w", err)
			}

			privateKey, err := os.ReadFile(keyFile)
			if err != nil {
				return fmt.Errorf("reading private key file: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ref := paw.Ref(args[0])

			err = client.Webapps().SetSSL(context.Background(), ref,
				string(certificate), string(privateKey))
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Installed certificate for %s (reload to apply)\n", ref.Domain)

			return nil
		},
	}

	cmd.Flags().StringVar(&certFile, "cert", "", "PEM certificate file (required)")
	cmd.Flags().StringVar(&keyFile, "key", "", "PEM private key file (required)")
	_ = cmd.MarkFlagRequired("cert")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
