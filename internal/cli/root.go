package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "urbansim",
	Short: "UrbanSim AI - Report and track municipal issues",
	Long: `UrbanSim CLI - Report potholes, water/electricity faults and sanitation
issues to your city, track their status, and triage them as an administrator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("urbansim version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewReportCmd())
	rootCmd.AddCommand(commands.NewReportsCmd())
	rootCmd.AddCommand(commands.NewIssuesCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
