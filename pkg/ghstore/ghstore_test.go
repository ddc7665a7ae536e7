package ghstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer creates an httptest.Server dispatching on "METHOD /path".
// Unhandled requests get a GitHub-style 404 body.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		if handler, ok := routes[key]; ok {
			handler(w, r)
			return
		}
		t.Logf("unhandled request: %s %s", r.Method, r.URL)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	}))
}

// newTestClient creates a Client for acme/docs pointed at the test server.
func newTestClient(t *testing.T, ts *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(ts.URL), WithHTTPClient(ts.Client())}, opts...)
	c, err := New(Config{Owner: "acme", Repo: "docs", Token: "test-token"}, opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNew_RequiresOwnerAndRepo(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Repo: "docs"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(Config{Owner: "acme"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNew_DefaultBranch(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Owner: "acme", Repo: "docs"})
	require.NoError(t, err)
	assert.Equal(t, "main", c.DefaultBranch())

	c, err = New(Config{Owner: "acme", Repo: "docs", Branch: "develop"})
	require.NoError(t, err)
	assert.Equal(t, "develop", c.DefaultBranch())
}

func TestSetDefaultBranch(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Owner: "acme", Repo: "docs"})
	require.NoError(t, err)

	require.NoError(t, c.SetDefaultBranch("release"))
	assert.Equal(t, "release", c.DefaultBranch())
}

func TestSetDefaultBranch_BlankRejected(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Owner: "acme", Repo: "docs", Branch: "develop"})
	require.NoError(t, err)

	for _, blank := range []string{"", "   ", "\t"} {
		err := c.SetDefaultBranch(blank)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		// previous default must survive a rejected change
		assert.Equal(t, "develop", c.DefaultBranch())
	}
}

func TestRequest_CarriesAuthAndAccept(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept string
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /repos/acme/docs": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			writeJSON(t, w, map[string]any{"name": "docs"})
		},
	})
	defer ts.Close()

	c := newTestClient(t, ts)
	_, err := c.RepoInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
}

func TestRequest_NoAuthHeaderWithoutToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /repos/acme/docs": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeJSON(t, w, map[string]any{"name": "docs"})
		},
	})
	defer ts.Close()

	c, err := New(Config{Owner: "acme", Repo: "docs"},
		WithBaseURL(ts.URL), WithHTTPClient(ts.Client()))
	require.NoError(t, err)

	_, err = c.RepoInfo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
