package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ghstore-dev/ghstore/pkg/ghstore"
	"github.com/ghstore-dev/ghstore/pkg/payload"
)

// newPutCmd creates the `put` command.
// Usage: ghstore put <local-file> [path] [-m message] [--force-create]
func newPutCmd(opts *rootOptions) *cobra.Command {
	var message string
	var forceCreate bool

	cmd := &cobra.Command{
		Use:   "put <local-file> [path]",
		Short: "Upload a local file to the store, creating or updating it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			store, err := newStore(opts, true)
			if err != nil {
				return err
			}
			return runPut(cmd.Context(), store, args[0], path, message, forceCreate)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message (defaults to Create/Update <path>)")
	cmd.Flags().BoolVar(&forceCreate, "force-create", false, "skip the version probe; fails if the path already exists")
	return cmd
}

func runPut(ctx context.Context, store Store, local, path, message string, forceCreate bool) error {
	enc, err := payload.EncodeFile(local)
	if err != nil {
		return err
	}
	if path == "" {
		path = filepath.Base(local)
	}

	result, err := store.Save(ctx, ghstore.SaveRequest{
		Path:          path,
		Payload:       enc,
		Message:       message,
		SkipSHALookup: forceCreate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ %s → %s (commit %.7s)\n", local, path, result.Commit.SHA)
	return nil
}
