package ghstore

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimit is the remote's request budget as reported on a response.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// RepoInfo is the upstream repository metadata plus the transport headers a
// caller may want to inspect. The client reads none of them itself.
type RepoInfo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
	Size          int64  `json:"size"`
	HTMLURL       string `json:"html_url"`

	RateLimit    RateLimit `json:"-"`
	ETag         string    `json:"-"`
	CacheControl string    `json:"-"`
}

// RepoInfo fetches the repository metadata in a single call.
func (c *Client) RepoInfo(ctx context.Context) (*RepoInfo, error) {
	u, err := url.JoinPath(c.apiBase, "repos", c.owner, c.repo)
	if err != nil {
		return nil, errors.Wrap(err, "building repo URL")
	}
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var info RepoInfo
	resp, err := c.do(req, &info)
	if err != nil {
		return nil, err
	}
	info.RateLimit = parseRateLimit(resp.Header)
	info.ETag = resp.Header.Get("ETag")
	info.CacheControl = resp.Header.Get("Cache-Control")
	return &info, nil
}

func parseRateLimit(h http.Header) RateLimit {
	var rl RateLimit
	rl.Limit, _ = strconv.Atoi(h.Get("X-RateLimit-Limit"))
	rl.Remaining, _ = strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if sec, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil && sec > 0 {
		rl.Reset = time.Unix(sec, 0)
	}
	return rl
}
