package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ghstore-dev/ghstore/pkg/payload"
)

// newGetCmd creates the `get` command.
// Usage: ghstore get <path> [-o local-file]
func newGetCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Download a file from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(opts, false)
			if err != nil {
				return err
			}
			return runGet(cmd.Context(), store, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "local file to write (defaults to the remote file name)")
	return cmd
}

func runGet(ctx context.Context, store Store, path, output string) error {
	f, err := store.Download(ctx, path, "")
	if err != nil {
		return err
	}

	data, err := payload.Decode(f.Payload)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	if output == "" {
		output = filepath.Base(path)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("✅ %s → %s (%d bytes)\n", path, output, len(data))
	return nil
}
