package ghstore

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// SaveRequest describes one create-or-update write.
type SaveRequest struct {
	// Path of the file inside the repository, slash-delimited.
	Path string
	// Payload is the base64-encoded file content (see payload.Encode).
	Payload string
	// Message is the commit message. When empty the client synthesizes
	// "Create <path>" or "Update <path>" depending on whether the path
	// already exists.
	Message string
	// Branch overrides the client's default branch when non-empty.
	Branch string
	// SkipSHALookup suppresses the pre-write version probe, saving one
	// request but forcing create semantics. Using it against an existing
	// path makes the remote reject the write.
	SkipSHALookup bool
}

// Commit identifies the revision a write produced.
type Commit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
}

// SaveResult is the remote's description of the file state after a write.
type SaveResult struct {
	Content *Entry `json:"content"`
	Commit  Commit `json:"commit"`
}

// DeleteResult confirms a completed deletion.
type DeleteResult struct {
	Path    string
	Deleted bool
	Commit  Commit
}

// Save writes a file, creating it or updating it in place. Unless
// SkipSHALookup is set, the current version marker is fetched first and
// carried on the write, which is what lets the remote detect a concurrent
// overwrite. The probe is a hint, not a lock: a racing writer can still
// change the marker between probe and write, in which case the remote
// rejects this write with a conflict that is passed through untouched.
//
// A probe that fails for any reason other than confirmed absence aborts
// the save; silently treating an unreachable remote as "file absent" would
// turn an intended update into a create.
func (c *Client) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	if req.Path == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "path is required")
	}
	branch := c.resolveBranch(req.Branch)

	sha := ""
	if !req.SkipSHALookup {
		s, err := c.FileSHA(ctx, req.Path, branch)
		switch {
		case err == nil:
			sha = s
		case errors.Is(err, ErrNotFound):
			// confirmed absent: create
		default:
			return nil, errors.Wrap(err, "probing current file version")
		}
	}

	message := req.Message
	if message == "" {
		if sha != "" {
			message = "Update " + req.Path
		} else {
			message = "Create " + req.Path
		}
	}

	u, err := c.contentsURL(req.Path, "")
	if err != nil {
		return nil, err
	}
	body := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		Content: req.Payload,
		Branch:  branch,
		SHA:     sha,
	}
	httpReq, err := c.newRequest(ctx, http.MethodPut, u, body)
	if err != nil {
		return nil, err
	}
	var result SaveResult
	if _, err := c.do(httpReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the file at path. The current version marker is fetched
// first; a path with no marker fails with ErrNotFound and no delete call
// is issued.
func (c *Client) Delete(ctx context.Context, path, branch string) (*DeleteResult, error) {
	if path == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "path is required")
	}
	ref := c.resolveBranch(branch)

	sha, err := c.FileSHA(ctx, path, ref)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "probing current file version")
	}

	u, err := c.contentsURL(path, "")
	if err != nil {
		return nil, err
	}
	body := struct {
		Message string `json:"message"`
		SHA     string `json:"sha"`
		Branch  string `json:"branch"`
	}{
		Message: "Delete " + path,
		SHA:     sha,
		Branch:  ref,
	}
	httpReq, err := c.newRequest(ctx, http.MethodDelete, u, body)
	if err != nil {
		return nil, err
	}
	var result struct {
		Commit Commit `json:"commit"`
	}
	if _, err := c.do(httpReq, &result); err != nil {
		return nil, err
	}
	return &DeleteResult{Path: path, Deleted: true, Commit: result.Commit}, nil
}
