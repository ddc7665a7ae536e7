package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghstore-dev/ghstore/internal/cliconf"
)

// newInitCmd creates the `init` command.
// Usage: ghstore init <owner> <repo> [--default-branch main]
func newInitCmd(opts *rootOptions) *cobra.Command {
	var defaultBranch string

	cmd := &cobra.Command{
		Use:   "init <owner> <repo>",
		Short: "Write a ghstore.toml pointing at a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts.configPath, args[0], args[1], defaultBranch)
		},
	}
	cmd.Flags().StringVar(&defaultBranch, "default-branch", "", "default branch to record in the config")
	return cmd
}

func runInit(configPath, owner, repo, branch string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists — edit it instead", configPath)
	}

	conf := &cliconf.Config{Owner: owner, Repo: repo, Branch: branch}
	if err := conf.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("✅ Wrote %s for %s/%s\n", configPath, owner, repo)
	return nil
}
