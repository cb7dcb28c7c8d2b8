package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/urbansim-ai/urbansim-cli/internal/session"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the UrbanSim backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set URBANSIM_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set URBANSIM_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	// Check for environment variables (useful for scripting)
	if email == "" {
		email = os.Getenv("URBANSIM_EMAIL")
	}
	if password == "" {
		password = os.Getenv("URBANSIM_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or URBANSIM_EMAIL env var)")
	}

	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println() // New line after password input
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or URBANSIM_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s...\n", cctx.baseURL)

	loginResp, err := cctx.api.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// The post-login destination is decided once, here. The allow-list only
	// upgrades principals the backend did not flag as admin.
	destination := session.Route(loginResp.IsAdmin, email, cctx.userCfg.AdminEmails)
	isAdmin := destination == session.AdminArea

	if err := cctx.manager.Login(loginResp.AccessToken, email, isAdmin); err != nil {
		if errors.Is(err, session.ErrEmptyCredential) {
			return fmt.Errorf("backend returned an empty access token")
		}
		// Session is active for this process; persistence failed.
		fmt.Printf("Warning: %v\n", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s\n", email)
	if isAdmin {
		fmt.Println("  Role: Admin")
	}
	fmt.Printf("  Destination: /%s\n", destination)

	return nil
}
