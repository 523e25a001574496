package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hh-labs/hh-permissions-tool/internal/config"
	"github.com/hh-labs/hh-permissions-tool/internal/gcp"
)

var auditCmd = &cobra.Command{
	Use:   "audit-gcp",
	Short: "Audit Google Cloud Platform permissions",
	Long: `Analyze IAM role bindings in a Google Cloud project.

The project's IAM policy is fetched through the Resource Manager API and
every role binding is printed as one row (role, members, resource).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration (Viper resolves behind the scenes)
		cfg, err := config.Load()
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}

		format, err := gcp.ParseFormat(viper.GetString("output"))
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}

		ctx := cmd.Context()
		client, err := gcp.NewProjectsClient(ctx, cfg.CredentialsPath)
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}
		defer client.Close()

		reporter := gcp.NewReporter(client, slog.Default())
		bindings, err := reporter.Audit(ctx, cfg.ProjectID)
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}

		return gcp.Render(os.Stdout, format, bindings)
	},
}

func init() {
	auditCmd.Flags().String("project-id", "", "Google Cloud project ID to audit")
	auditCmd.Flags().StringP("output", "o", "table", "Output format (table, json, yaml)")

	viper.BindPFlag("project-id", auditCmd.Flags().Lookup("project-id"))
	viper.BindPFlag("output", auditCmd.Flags().Lookup("output"))
}
