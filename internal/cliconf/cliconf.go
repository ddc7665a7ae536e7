// Package cliconf reads and writes the ghstore.toml file that tells the
// CLI which repository to treat as its file store.
package cliconf

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "ghstore.toml"

// Config is the on-disk CLI configuration. The token deliberately does not
// live here; it comes from the environment so the file stays safe to commit.
type Config struct {
	Owner  string `toml:"owner"`
	Repo   string `toml:"repo"`
	Branch string `toml:"branch,omitempty"`
}

// Load reads and parses a ghstore.toml file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no config found at %s — run `ghstore init` first", path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// Validate checks that the required fields are present.
func (c *Config) Validate() error {
	if c.Owner == "" {
		return fmt.Errorf("missing required field %q", "owner")
	}
	if c.Repo == "" {
		return fmt.Errorf("missing required field %q", "repo")
	}
	return nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
