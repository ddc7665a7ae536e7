package ghstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawURLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rawURL string
		want   string
		wantOK bool
	}{
		{
			name:   "plain file URL",
			rawURL: "https://raw.githubusercontent.com/acme/docs/main/folder/file.txt",
			want:   "folder/file.txt",
			wantOK: true,
		},
		{
			name:   "query parameters stripped",
			rawURL: "https://raw.githubusercontent.com/acme/docs/main/folder/file.txt?token=XYZ",
			want:   "folder/file.txt",
			wantOK: true,
		},
		{
			name:   "nested path on another ref",
			rawURL: "https://raw.githubusercontent.com/acme/docs/release/a/b/c.bin",
			want:   "a/b/c.bin",
			wantOK: true,
		},
		{
			name:   "different owner",
			rawURL: "https://raw.githubusercontent.com/other/docs/main/folder/file.txt",
			wantOK: false,
		},
		{
			name:   "different repo",
			rawURL: "https://raw.githubusercontent.com/acme/website/main/folder/file.txt",
			wantOK: false,
		},
		{
			name:   "wrong host",
			rawURL: "https://github.com/acme/docs/blob/main/folder/file.txt",
			wantOK: false,
		},
		{
			name:   "no path after the ref",
			rawURL: "https://raw.githubusercontent.com/acme/docs/main",
			wantOK: false,
		},
		{
			name:   "not a URL at all",
			rawURL: "::://nope",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := RawURLPath("acme", "docs", tt.rawURL)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientRawURLPath(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Owner: "acme", Repo: "docs"})
	require.NoError(t, err)

	got, ok := c.RawURLPath("https://raw.githubusercontent.com/acme/docs/main/readme.md")
	require.True(t, ok)
	assert.Equal(t, "readme.md", got)

	_, ok = c.RawURLPath("https://raw.githubusercontent.com/acme/other/main/readme.md")
	assert.False(t, ok)
}
