// Package auth resolves the GitHub credential the CLI hands to the store
// client. The library itself takes the token as plain configuration; only
// the CLI goes looking for it in the environment.
package auth

import (
	"fmt"
	"os"
)

// githubTokenEnvVars lists the environment variables checked for a GitHub
// token, in priority order.
var githubTokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

// Token returns the GitHub personal access token from the environment.
// It checks GITHUB_TOKEN first, then GH_TOKEN. An empty string means no
// token is set; reads against public repositories still work, with
// stricter rate limits.
func Token() string {
	for _, env := range githubTokenEnvVars {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// RequireToken returns the token or an error when none is set. Write
// commands use it: an unauthenticated write is guaranteed to be rejected,
// so failing early with a pointer to the fix beats a remote 401.
func RequireToken() (string, error) {
	if tok := Token(); tok != "" {
		return tok, nil
	}
	return "", fmt.Errorf(
		"no GitHub token found: set %s or %s in your environment",
		githubTokenEnvVars[0], githubTokenEnvVars[1],
	)
}
