package ghstore

import (
	"net/url"
	"strings"
)

const rawContentHost = "raw.githubusercontent.com"

// RawURLPath extracts the repository-relative file path from a
// raw.githubusercontent.com URL of the form
// https://raw.githubusercontent.com/<owner>/<repo>/<ref>/<path>, dropping
// any query parameters. It reports false when the URL does not match the
// template or names a different owner/repo.
func RawURLPath(owner, repo, rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if u.Host != rawContentHost {
		return "", false
	}
	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) < 4 {
		return "", false
	}
	if segments[0] != owner || segments[1] != repo {
		return "", false
	}
	path := strings.Join(segments[3:], "/")
	if path == "" {
		return "", false
	}
	return path, true
}

// RawURLPath extracts the repository-relative path from a raw-content URL
// for this client's owner/repo.
func (c *Client) RawURLPath(rawURL string) (string, bool) {
	return RawURLPath(c.owner, c.repo, rawURL)
}
