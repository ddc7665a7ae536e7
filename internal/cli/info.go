package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the `info` command.
// Usage: ghstore info
func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show repository metadata and the remaining API rate budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(opts, false)
			if err != nil {
				return err
			}
			return runInfo(cmd.Context(), store)
		},
	}
}

func runInfo(ctx context.Context, store Store) error {
	info, err := store.RepoInfo(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("📚 %s\n", info.FullName)
	if info.Description != "" {
		fmt.Printf("   %s\n", info.Description)
	}
	fmt.Printf("   visibility:     %s\n", info.Visibility)
	fmt.Printf("   default branch: %s\n", info.DefaultBranch)
	fmt.Printf("   size:           %d KB\n", info.Size)
	fmt.Printf("   rate limit:     %d/%d remaining", info.RateLimit.Remaining, info.RateLimit.Limit)
	if !info.RateLimit.Reset.IsZero() {
		fmt.Printf(" (resets %s)", info.RateLimit.Reset.Format("15:04:05"))
	}
	fmt.Println()
	return nil
}
