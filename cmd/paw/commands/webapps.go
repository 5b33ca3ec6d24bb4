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

// NewWebappsCommand creates the webapps command group.
func NewWebappsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webapps",
		Aliases: []string{"webapp"},
		Short:   "Manage webapps",
		Long:    "List, create, update, reload, and delete PythonAnywhere webapps",
	}

	cmd.AddCommand(newWebappsListCommand())
	cmd.AddCommand(newWebappsGetCommand())
	cmd.AddCommand(newWebappsCreateCommand())
	cmd.AddCommand(newWebappsUpdateCommand())
	cmd.AddCommand(newWebappsDeleteCommand())
	cmd.AddCommand(newWebappsReloadCommand())
	cmd.AddCommand(newStaticFilesCommand())

	return cmd
}

func newWebappsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webapps",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webapps, err := client.Webapps().List(context.Background())
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(webapps)
			case OutputFormatYAML:
				return renderYAML(webapps)
			default:
				if len(webapps) == 0 {
					_, _ = os.Stdout.WriteString("No webapps found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Domain", "Python", "Virtualenv", "Source", "HTTPS only")

				for _, webapp := range webapps {
					_ = table.Append(webapp.DomainName, webapp.PythonVersion,
						webapp.VirtualenvPath, webapp.SourceDirectory,
						boolString(webapp.ForceHTTPS))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newWebappsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN",
		Short: "Show one webapp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webapp, err := client.Webapps().Get(context.Background(), paw.Ref(args[0]))
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(webapp)
			case OutputFormatYAML:
				return renderYAML(webapp)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Domain", webapp.DomainName)
				_ = table.Append("User", webapp.User)
				_ = table.Append("Python version", webapp.PythonVersion)
				_ = table.Append("Virtualenv", webapp.VirtualenvPath)
				_ = table.Append("Source directory", webapp.SourceDirectory)
				_ = table.Append("Working directory", webapp.WorkingDirectory)
				_ = table.Append("Expiry", webapp.Expiry)
				_ = table.Append("HTTPS only", boolString(webapp.ForceHTTPS))
				_ = table.Append("Password protected", boolString(webapp.PasswordProtectionEnabled))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newWebappsCreateCommand() *cobra.Command {
	var (
		pythonVersion  string
		virtualenvPath string
		projectPath    string
		nuke           bool
		noDefaults     bool
		noReload       bool
	)

	cmd := &cobra.Command{
		Use:   "create DOMAIN",
		Short: "Create a webapp",
		Long: `Create a webapp for a domain, set its virtualenv and source directory,
add the default /static/ and /media/ mappings, and reload it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			webapps := client.Webapps()
			ref := paw.Ref(domain)

			err = webapps.SanityChecks(ctx, ref, nuke)
			if err != nil {
				return err
			}

			err = webapps.Create(ctx, &paw.WebappCreateRequest{
				Domain:         domain,
				PythonVersion:  pythonVersion,
				VirtualenvPath: virtualenvPath,
				ProjectPath:    projectPath,
				Nuke:           nuke,
			})
			if err != nil {
				return err
			}

			if !noDefaults && projectPath != "" {
				err = webapps.AddDefaultStaticMappings(ctx, ref, projectPath)
				if err != nil {
					return err
				}
			}

			if !noReload {
				err = webapps.Reload(ctx, ref)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stdout, "Created webapp for %s\n", domain)

			return nil
		},
	}

	cmd.Flags().StringVarP(&pythonVersion, "python", "p", "3.10", "Python version (e.g. 3.10)")
	cmd.Flags().StringVar(&virtualenvPath, "virtualenv", "", "virtualenv path")
	cmd.Flags().StringVar(&projectPath, "project-path", "", "source directory of the project")
	cmd.Flags().BoolVar(&nuke, "nuke", false, "delete any existing webapp for the domain first")
	cmd.Flags().BoolVar(&noDefaults, "no-static-defaults", false, "skip the default /static/ and /media/ mappings")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "skip the reload after creation")

	return cmd
}

func newWebappsUpdateCommand() *cobra.Command {
	var (
		pythonVersion  string
		virtualenvPath string
		sourceDir      string
		workingDir     string
		forceHTTPS     string
	)

	cmd := &cobra.Command{
		Use:   "update DOMAIN",
		Short: "Update webapp settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]interface{}{}

			if cmd.Flags().Changed("python") {
				resolved, err := paw.ResolvePythonVersion(pythonVersion)
				if err != nil {
					return err
				}

				fields["python_version"] = resolved
			}

			if cmd.Flags().Changed("virtualenv") {
				fields["virtualenv_path"] = virtualenvPath
			}

			if cmd.Flags().Changed("source-directory") {
				fields["source_directory"] = sourceDir
			}

			if cmd.Flags().Changed("working-directory") {
				fields["working_directory"] = workingDir
			}

			if cmd.Flags().Changed("force-https") {
				enabled, err := strconv.ParseBool(forceHTTPS)
				if err != nil {
					return fmt.Errorf("parsing --force-https: %w", err)
				}

				fields["force_https"] = enabled
			}

			if len(fields) == 0 {
				return cmd.Help()
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			webapp, err := client.Webapps().Patch(context.Background(), paw.Ref(args[0]), fields)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Updated webapp for %s (reload to apply)\n", webapp.DomainName)

			return nil
		},
	}

	cmd.Flags().StringVarP(&pythonVersion, "python", "p", "", "Python version (e.g. 3.10)")
	cmd.Flags().StringVar(&virtualenvPath, "virtualenv", "", "virtualenv path")
	cmd.Flags().StringVar(&sourceDir, "source-directory", "", "source directory")
	cmd.Flags().StringVar(&workingDir, "working-directory", "", "working directory")
	cmd.Flags().StringVar(&forceHTTPS, "force-https", "", "redirect HTTP to HTTPS (true/false)")

	return cmd
}

func newWebappsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DOMAIN",
		Short: "Delete a webapp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete the webapp for '%s'? (y/N): ", domain)

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

			err = client.Webapps().Delete(context.Background(), paw.Ref(domain))
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Deleted webapp for %s\n", domain)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newWebappsReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload DOMAIN",
		Short: "Reload a webapp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Webapps().Reload(context.Background(), paw.Ref(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Reloaded webapp for %s\n", args[0])

			return nil
		},
	}
}

func newStaticFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "static-files",
		Short: "Manage static file mappings",
	}

	cmd.AddCommand(newStaticFilesAddCommand())
	cmd.AddCommand(newStaticFilesAddDefaultsCommand())

	return cmd
}

func newStaticFilesAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add DOMAIN URL_PATH DIRECTORY",
		Short: "Map a URL path to a directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Webapps().CreateStaticMapping(context.Background(),
				paw.Ref(args[0]), args[1], args[2])
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Mapped %s to %s (reload to apply)\n", args[1], args[2])

			return nil
		},
	}
}

func newStaticFilesAddDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-defaults DOMAIN PROJECT_PATH",
		Short: "Add the conventional /static/ and /media/ mappings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Webapps().AddDefaultStaticMappings(context.Background(),
				paw.Ref(args[0]), args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Added default static mappings for %s (reload to apply)\n", args[0])

			return nil
		},
	}
}
