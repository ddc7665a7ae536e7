package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newLsCmd creates the `ls` command.
// Usage: ghstore ls [folder]
func newLsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder]",
		Short: "List the files in a folder of the store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := ""
			if len(args) == 1 {
				folder = args[0]
			}
			store, err := newStore(opts, false)
			if err != nil {
				return err
			}
			return runLs(cmd.Context(), store, folder)
		},
	}
}

func runLs(ctx context.Context, store Store, folder string) error {
	entries, err := store.List(ctx, folder, "")
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("📋 Nothing here — empty folder, or the path is a single file.")
		return nil
	}

	for _, e := range entries {
		switch e.Type {
		case "dir":
			fmt.Printf("  📁 %s/\n", e.Path)
		default:
			fmt.Printf("  📄 %s (%d bytes)\n", e.Path, e.Size)
		}
	}
	return nil
}
