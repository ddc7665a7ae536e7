// Package ghstore treats a single GitHub repository branch as a flat file
// store. Every operation maps to one or two REST calls against the GitHub
// contents API; there is no caching, no retrying, and no local state beyond
// the client's own configuration.
package ghstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultAPIBase = "https://api.github.com"
	defaultBranch  = "main"
)

// Config identifies the repository a Client operates on.
type Config struct {
	// Owner is the GitHub organisation or user owning the repository.
	Owner string
	// Repo is the repository name.
	Repo string
	// Token is an optional personal access token. Without it the client is
	// limited to read operations against public repositories.
	Token string
	// Branch is the default branch used when a call does not name one.
	// Defaults to "main".
	Branch string
}

// Client is a handle on one owner/repo scope. It carries no connection
// state of its own; concurrent calls on the same Client are independent
// and race only at the remote API.
type Client struct {
	owner   string
	repo    string
	token   string
	apiBase string

	httpClient *http.Client
	log        *zap.Logger

	mu     sync.RWMutex
	branch string
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the transport. Timeouts and cancellation are
// the transport's business, not the client's.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API endpoint, such as an
// httptest server or a GitHub Enterprise host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.apiBase = strings.TrimSuffix(base, "/") }
}

// WithLogger installs a structured logger. The client logs each outgoing
// request at debug level and nothing else.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the given repository scope. No network call is
// made.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "owner and repo are required")
	}
	branch := cfg.Branch
	if branch == "" {
		branch = defaultBranch
	}
	c := &Client{
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		token:      cfg.Token,
		apiBase:    defaultAPIBase,
		httpClient: http.DefaultClient,
		log:        zap.NewNop(),
		branch:     branch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Owner returns the configured repository owner.
func (c *Client) Owner() string { return c.owner }

// Repo returns the configured repository name.
func (c *Client) Repo() string { return c.repo }

// DefaultBranch returns the branch used when a call does not name one.
func (c *Client) DefaultBranch() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.branch
}

// SetDefaultBranch replaces the default branch for subsequent calls.
// A blank branch fails with ErrInvalidArgument and leaves the previous
// default in place.
func (c *Client) SetDefaultBranch(branch string) error {
	if strings.TrimSpace(branch) == "" {
		return errors.Wrap(ErrInvalidArgument, "branch must not be blank")
	}
	c.mu.Lock()
	c.branch = branch
	c.mu.Unlock()
	return nil
}

// resolveBranch picks the explicit branch if given, the default otherwise.
func (c *Client) resolveBranch(branch string) string {
	if branch != "" {
		return branch
	}
	return c.DefaultBranch()
}

// contentsURL builds the contents endpoint URL for a repository path.
func (c *Client) contentsURL(path, ref string) (string, error) {
	u, err := url.JoinPath(c.apiBase, "repos", c.owner, c.repo, "contents", path)
	if err != nil {
		return "", errors.Wrapf(err, "building contents URL for %q", path)
	}
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}
	return u, nil
}

// newRequest builds an API request with auth and media-type headers set.
// A non-nil body is JSON-encoded.
func (c *Client) newRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		rdr = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx response body into out when out
// is non-nil. Non-2xx responses become an *APIError. The returned response
// has its body drained and closed; only its headers remain usable.
func (c *Client) do(req *http.Request, out any) (*http.Response, error) {
	c.log.Debug("github request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, c.apiError(req, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, errors.Wrapf(err, "decoding response from %s", req.URL)
		}
	}
	return resp, nil
}

// apiError turns an error response into an *APIError, best-effort decoding
// GitHub's {"message", "documentation_url"} error shape.
func (c *Client) apiError(req *http.Request, resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        req.URL.String(),
	}
	var ghErr struct {
		Message string `json:"message"`
		DocURL  string `json:"documentation_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ghErr); err == nil {
		apiErr.Message = ghErr.Message
		apiErr.DocURL = ghErr.DocURL
	}
	return apiErr
}
