// Package cli implements the hh-permissions command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hh-labs/hh-permissions-tool/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hh-permissions",
	Short: "Audit Google Cloud IAM permissions",
	Long: `HH Permissions Tool - Manage and audit permissions effectively.

This tool analyzes IAM role bindings in a Google Cloud project and
displays them as a formatted table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile := viper.GetString("env-file"); envFile != "" {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
		}

		level, err := config.ParseLogLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}

		// Logs go to stderr so the report table on stdout stays clean.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		return nil
	},
}

// Execute runs the root command with the build version attached.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to an environment file loaded before resolution")
	rootCmd.PersistentFlags().String("log-level", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")

	viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}
