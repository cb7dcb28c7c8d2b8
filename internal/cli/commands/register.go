package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/client"
)

// NewRegisterCmd creates the account registration command
func NewRegisterCmd() *cobra.Command {
	var email, name, mobile, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new citizen account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(email, name, mobile, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&mobile, "mobile", "", "10-digit mobile number")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")

	return cmd
}

func runRegister(email, name, mobile, password string) error {
	if email == "" {
		email = os.Getenv("URBANSIM_EMAIL")
	}
	if email == "" || name == "" || mobile == "" {
		return fmt.Errorf("email, name and mobile are required")
	}
	if len(mobile) != 10 {
		return fmt.Errorf("mobile number must be exactly 10 digits")
	}

	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password)")
		}
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	resp, err := cctx.api.Register(client.RegisterRequest{
		Email:        email,
		Password:     password,
		FullName:     name,
		MobileNumber: mobile,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println("✓ Account created!")
	fmt.Printf("  User: %s (%s)\n", resp.FullName, resp.Email)
	fmt.Println("Run 'urbansim login' to sign in.")

	return nil
}
