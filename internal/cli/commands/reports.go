package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urbansim-ai/urbansim-cli/internal/reports"
)

// NewReportsCmd creates the report tracking command
func NewReportsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List and track your submitted reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(status)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show reports with this status (submitted, assigned, in_progress, resolved)")

	return cmd
}

func runReports(statusFilter string) error {
	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	if _, err := cctx.guard.RequireAuth(); err != nil {
		return err
	}

	own, err := cctx.api.MyReports()
	if err != nil {
		return err
	}

	shown := own
	if statusFilter != "" {
		shown = reports.FilterByStatus(own, statusFilter)
	}

	if len(shown) == 0 {
		fmt.Println("No reports found.")
	}
	for _, r := range shown {
		dept := r.Department
		if dept == "" {
			dept = "-"
		}
		fmt.Printf("#%-5d %-12s %-18s %s\n", r.ID, reports.Normalize(r.Status), dept, r.Title)
	}

	// Summary is always over all reports, not the filtered view.
	counts := reports.CountByStatus(own)
	fmt.Printf("\nResolved: %d  In progress: %d  Pending: %d  Total: %d\n",
		counts.Resolved, counts.InProgress, counts.Pending, counts.Total)

	return nil
}
