package ghstore

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Entry is one item of a contents listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	Type        string `json:"type"` // "file", "dir", "symlink" or "submodule"
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

// File is a downloaded file: its listing entry plus the payload exactly as
// the remote returned it. The payload stays base64-encoded; decoding is the
// caller's business (see the payload package).
type File struct {
	Entry
	Payload  string `json:"content"`
	Encoding string `json:"encoding"`
}

// List returns the entries under folder at the given branch (default branch
// when blank). A path that resolves to a single file rather than a folder
// yields an empty slice, not an error; the contents API answers both cases
// with a 200 and only the payload shape tells them apart.
func (c *Client) List(ctx context.Context, folder, branch string) ([]Entry, error) {
	u, err := c.contentsURL(folder, c.resolveBranch(branch))
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if _, err := c.do(req, &raw); err != nil {
		return nil, err
	}
	if !listShaped(raw) {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "decoding listing of %q", folder)
	}
	return entries, nil
}

// FileSHA probes for the current version marker of the file at path. The
// marker is what the remote API demands before it will overwrite or delete
// an existing file.
//
// The result is tri-state: (sha, nil) when the path is a file; ErrNotFound
// when the remote confirmed there is no file there (missing path, or the
// path is a directory); any other error means the probe itself failed and
// nothing is known about the path.
func (c *Client) FileSHA(ctx context.Context, path, branch string) (string, error) {
	ref := c.resolveBranch(branch)
	u, err := c.contentsURL(path, ref)
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	var raw json.RawMessage
	if _, err := c.do(req, &raw); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", errors.Wrapf(ErrNotFound, "%s@%s", path, ref)
		}
		return "", err
	}
	if listShaped(raw) {
		return "", errors.Wrapf(ErrNotFound, "%s@%s is a directory", path, ref)
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return "", errors.Wrapf(err, "decoding contents of %q", path)
	}
	if entry.SHA == "" {
		return "", errors.Wrapf(ErrNotFound, "%s@%s", path, ref)
	}
	return entry.SHA, nil
}

// Download fetches the file at path. Only a file-shaped response carrying a
// base64 payload is returned; a directory listing or any other encoding
// fails with ErrUnavailable.
func (c *Client) Download(ctx context.Context, path, branch string) (*File, error) {
	u, err := c.contentsURL(path, c.resolveBranch(branch))
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if _, err := c.do(req, &raw); err != nil {
		return nil, err
	}
	if listShaped(raw) {
		return nil, errors.Wrapf(ErrUnavailable, "%s is a directory", path)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "decoding contents of %q", path)
	}
	if f.Encoding != "base64" {
		return nil, errors.Wrapf(ErrUnavailable, "%s has encoding %q", path, f.Encoding)
	}
	return &f, nil
}

// listShaped reports whether a raw JSON payload is an array.
func listShaped(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
