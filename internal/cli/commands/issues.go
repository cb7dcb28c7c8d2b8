package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/client"
	"github.com/urbansim-ai/urbansim-cli/internal/reports"
)

// NewIssuesCmd creates the admin triage command group
func NewIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Triage reported issues (admin only)",
	}

	cmd.AddCommand(newIssuesListCmd())
	cmd.AddCommand(newIssuesStatusCmd())
	cmd.AddCommand(newIssuesAssignCmd())
	cmd.AddCommand(newIssuesResolveCmd())

	return cmd
}

func newIssuesListCmd() *cobra.Command {
	var status, department string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all reported issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIssuesList(status, department)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show issues with this status")
	cmd.Flags().StringVar(&department, "department", "", "Only show issues assigned to this department")

	return cmd
}

func runIssuesList(status, department string) error {
	cctx, err := requireAdminContext()
	if err != nil {
		return err
	}

	issues, err := cctx.api.ListIssues()
	if err != nil {
		return err
	}

	shown := filterIssues(issues, status, department)
	if len(shown) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	for _, issue := range shown {
		dept := issue.AssignedDepartment
		if dept == "" {
			dept = "-"
		}
		fmt.Printf("#%-5d %-8s %-12s %-18s %s\n",
			issue.ID, issue.UrgencyLevel, reports.Normalize(issue.Status), dept, issue.Title)
	}
	fmt.Printf("\n%d of %d issues\n", len(shown), len(issues))

	return nil
}

func filterIssues(issues []client.Issue, status, department string) []client.Issue {
	var out []client.Issue
	for _, issue := range issues {
		if status != "" && reports.Normalize(issue.Status) != reports.Normalize(status) {
			continue
		}
		if department != "" && !strings.EqualFold(issue.AssignedDepartment, department) {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func newIssuesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update the status of an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIssueID(args[0])
			if err != nil {
				return err
			}

			cctx, err := requireAdminContext()
			if err != nil {
				return err
			}

			if err := cctx.api.UpdateIssueStatus(id, args[1]); err != nil {
				return err
			}
			fmt.Printf("✓ Issue #%d moved to %q\n", id, args[1])
			return nil
		},
	}
}

func newIssuesAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <id> <department>",
		Short: "Assign an issue to a municipal department",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIssueID(args[0])
			if err != nil {
				return err
			}

			cctx, err := requireAdminContext()
			if err != nil {
				return err
			}

			if err := cctx.api.AssignIssue(id, args[1]); err != nil {
				return err
			}
			fmt.Printf("✓ Issue #%d assigned to %s\n", id, args[1])
			return nil
		},
	}
}

func newIssuesResolveCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Mark an issue as resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIssueID(args[0])
			if err != nil {
				return err
			}

			cctx, err := requireAdminContext()
			if err != nil {
				return err
			}

			if err := cctx.api.ResolveIssue(id, notes, cctx.guard.Email()); err != nil {
				return err
			}
			fmt.Printf("✓ Issue #%d resolved\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "What was done to resolve the issue")

	return cmd
}

func parseIssueID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid issue id %q", raw)
	}
	return id, nil
}

// requireAdminContext builds the CLI context and gates on admin access.
func requireAdminContext() (*cliContext, error) {
	cctx, err := newCLIContext()
	if err != nil {
		return nil, err
	}
	if _, err := cctx.guard.RequireAdmin(); err != nil {
		return nil, err
	}
	return cctx, nil
}
