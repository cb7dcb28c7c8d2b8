package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/urbansim-ai/urbansim-cli/internal/cli/auth"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	cctx, err := newCLIContext()
	if err != nil {
		return err
	}

	s, err := cctx.guard.RequireAuth()
	if err != nil {
		return err
	}

	role := "Citizen"
	if s.IsAdmin {
		role = "Admin"
	}

	fmt.Printf("Email: %s\n", s.Email)
	fmt.Printf("Role:  %s\n", role)

	// Expiry comes from an unverified decode and is informational only.
	if claims, err := auth.PeekClaims(s.Token); err == nil && claims.ExpiresAt != nil {
		fmt.Printf("Token expires: %s\n", claims.ExpiresAt.Time.Format(time.RFC1123))
		if time.Now().After(claims.ExpiresAt.Time) {
			fmt.Println("  Token has expired, run 'urbansim login' again")
		}
	}

	return nil
}
