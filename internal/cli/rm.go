package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newRmCmd creates the `rm` command.
// Usage: ghstore rm <path>
func newRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(opts, true)
			if err != nil {
				return err
			}
			return runRm(cmd.Context(), store, args[0])
		},
	}
}

func runRm(ctx context.Context, store Store, path string) error {
	result, err := store.Delete(ctx, path, "")
	if err != nil {
		return err
	}
	fmt.Printf("🗑️  Deleted %s (commit %.7s)\n", result.Path, result.Commit.SHA)
	return nil
}
