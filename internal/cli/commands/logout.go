package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	// The in-memory session is cleared even if the keychain delete fails;
	// surface that failure so the user knows stale credentials may remain.
	if err := cctx.manager.Logout(); err != nil {
		fmt.Println("✓ Logged out (local session cleared)")
		return err
	}

	fmt.Println("✓ Logged out")
	return nil
}
