package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newURLCmd creates the `url` command.
// Usage: ghstore url <raw-url>
func newURLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "url <raw-url>",
		Short: "Extract the store path from a raw.githubusercontent.com URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(opts, false)
			if err != nil {
				return err
			}
			return runURL(store, args[0])
		},
	}
}

func runURL(store Store, rawURL string) error {
	path, ok := store.RawURLPath(rawURL)
	if !ok {
		return fmt.Errorf("%s does not point into the configured repository", rawURL)
	}
	fmt.Println(path)
	return nil
}
