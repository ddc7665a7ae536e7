package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ghstore-dev/ghstore/internal/auth"
	"github.com/ghstore-dev/ghstore/internal/cliconf"
	"github.com/ghstore-dev/ghstore/pkg/ghstore"
)

// version is set at build time via -ldflags.
var version = "dev"

// Store is the subset of *ghstore.Client the commands depend on.
// Tests substitute a mock.
type Store interface {
	RepoInfo(ctx context.Context) (*ghstore.RepoInfo, error)
	List(ctx context.Context, folder, branch string) ([]ghstore.Entry, error)
	Download(ctx context.Context, path, branch string) (*ghstore.File, error)
	Save(ctx context.Context, req ghstore.SaveRequest) (*ghstore.SaveResult, error)
	Delete(ctx context.Context, path, branch string) (*ghstore.DeleteResult, error)
	RawURLPath(rawURL string) (string, bool)
}

var _ Store = (*ghstore.Client)(nil)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	branch     string
	verbose    bool
}

// NewRootCmd creates the top-level `ghstore` command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ghstore",
		Short: "ghstore — use a GitHub repository branch as a flat file store",
		Long: `ghstore maps file operations (list, upload, download, delete) onto the
GitHub contents API, treating one repository branch as a flat file store.
The target repository is read from ghstore.toml; the token comes from
GITHUB_TOKEN or GH_TOKEN.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", cliconf.DefaultConfigFile, "path to the ghstore.toml config file")
	pf.StringVarP(&opts.branch, "branch", "b", "", "branch to operate on (overrides the configured default)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every API request")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newInfoCmd(opts))
	root.AddCommand(newLsCmd(opts))
	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newPutCmd(opts))
	root.AddCommand(newRmCmd(opts))
	root.AddCommand(newURLCmd(opts))
	root.AddCommand(newIDCmd())

	return root
}

// newStore builds the store client from the config file and environment.
// Write commands set needToken so a missing credential fails before any
// network call.
func newStore(opts *rootOptions, needToken bool) (Store, error) {
	conf, err := cliconf.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	token := auth.Token()
	if needToken {
		if token, err = auth.RequireToken(); err != nil {
			return nil, err
		}
	}

	branch := conf.Branch
	if opts.branch != "" {
		branch = opts.branch
	}

	var clientOpts []ghstore.Option
	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("building logger: %w", err)
		}
		clientOpts = append(clientOpts, ghstore.WithLogger(log))
	}

	return ghstore.New(ghstore.Config{
		Owner:  conf.Owner,
		Repo:   conf.Repo,
		Token:  token,
		Branch: branch,
	}, clientOpts...)
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
