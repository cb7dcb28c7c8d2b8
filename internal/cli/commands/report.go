package commands

import (
	"fmt"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/urbansim-ai/urbansim-cli/internal/reports"
)

// NewReportCmd creates the report submission command
func NewReportCmd() *cobra.Command {
	var sub reports.Submission

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Submit a municipal issue report",
		Long: `Submit a municipal issue report (pothole, water/electricity fault,
sanitation) to the city. Login is not required; contact details are part of
the report itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(&sub)
		},
	}

	cmd.Flags().StringVar(&sub.UserName, "name", "", "Your full name")
	cmd.Flags().StringVar(&sub.UserMobile, "mobile", "", "Your 10-digit mobile number")
	cmd.Flags().StringVar(&sub.UserEmail, "email", "", "Your email address (optional)")
	cmd.Flags().StringVar(&sub.Title, "title", "", "Short title for the issue")
	cmd.Flags().StringVar(&sub.Description, "description", "", "What is wrong and where")
	cmd.Flags().StringVar(&sub.UrgencyLevel, "urgency", "", "Urgency: High, Medium or Low (will prompt if not provided)")
	cmd.Flags().Float64Var(&sub.LocationLat, "lat", 0, "Latitude of the issue location")
	cmd.Flags().Float64Var(&sub.LocationLong, "long", 0, "Longitude of the issue location")
	cmd.Flags().StringVar(&sub.LocationAddress, "address", "", "Street address (optional)")

	return cmd
}

func runReport(sub *reports.Submission) error {
	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	// Prefill the contact email from the session when logged in.
	if sub.UserEmail == "" {
		sub.UserEmail = cctx.guard.Email()
	}

	if sub.UrgencyLevel == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("urgency is required in non-interactive mode (use --urgency)")
		}
		prompt := promptui.Select{
			Label: "Urgency level",
			Items: []string{reports.UrgencyHigh, reports.UrgencyMedium, reports.UrgencyLow},
		}
		_, choice, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("urgency selection cancelled: %w", err)
		}
		sub.UrgencyLevel = choice
	}

	// Client-side hint only; the backend classifier has the final say.
	if sub.Department == "" {
		if deptMap, err := reports.LoadDepartmentMap(); err == nil {
			sub.Department = deptMap.Suggest(sub.Description)
		}
	}

	if err := sub.Validate(); err != nil {
		return err
	}

	resp, err := cctx.api.CreateReport(sub)
	if err != nil {
		return err
	}

	fmt.Println("✓ Report submitted!")
	fmt.Printf("  Report ID:  %d\n", resp.ReportID)
	fmt.Printf("  Urgency:    %s\n", resp.UrgencyLevel)
	fmt.Printf("  Department: %s\n", resp.Department)
	if resp.AutoAssigned {
		fmt.Println("  Assigned automatically by the classifier")
	}

	return nil
}
