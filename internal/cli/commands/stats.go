package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the dashboard statistics command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show city dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	// Admins get the triage counters and the per-department view; everyone
	// else sees the public dashboard.
	if cctx.guard.IsAdmin() {
		return runAdminStats(cctx)
	}
	return runPublicStats(cctx)
}

func runPublicStats(cctx *cliContext) error {
	summary, err := cctx.api.Dashboard()
	if err != nil {
		return err
	}

	fmt.Println(summary.Message)
	fmt.Printf("  Total reports:  %d\n", summary.PublicStats.TotalReports)
	fmt.Printf("  Resolved today: %d\n", summary.PublicStats.TodayResolved)
	fmt.Printf("  Active issues:  %d\n", summary.PublicStats.ActiveIssues)

	if len(summary.RecentReports) > 0 {
		fmt.Println("\nRecent reports:")
		for _, r := range summary.RecentReports {
			fmt.Printf("  #%-5d %s\n", r.ID, r.Title)
		}
	}

	return nil
}

func runAdminStats(cctx *cliContext) error {
	stats, err := cctx.api.AdminDashboardStats()
	if err != nil {
		return err
	}

	fmt.Printf("Total issues:    %d\n", stats.TotalIssues)
	fmt.Printf("Resolved issues: %d\n", stats.ResolvedIssues)
	fmt.Printf("Pending issues:  %d\n", stats.PendingIssues)

	departments, err := cctx.api.DepartmentSummaries()
	if err != nil {
		return err
	}
	if len(departments) > 0 {
		fmt.Println("\nDepartments:")
		for _, dept := range departments {
			fmt.Printf("  %-20s issues: %-4d efficiency: %.0f%%\n",
				dept.Name, dept.TotalIssues, dept.Efficiency)
		}
	}

	return nil
}
