package urlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "sibling file",
			base: "http://a/b/c/d;p?q",
			ref:  "g",
			want: "http://a/b/c/g",
		},
		{
			name: "explicit current directory",
			base: "http://a/b/c/d;p?q",
			ref:  "./g",
			want: "http://a/b/c/g",
		},
		{
			name: "directory reference",
			base: "http://a/b/c/d;p?q",
			ref:  "g/",
			want: "http://a/b/c/g/",
		},
		{
			name: "absolute path",
			base: "http://a/b/c/d;p?q",
			ref:  "/g",
			want: "http://a/g",
		},
		{
			name: "network-path reference",
			base: "http://a/b/c/d;p?q",
			ref:  "//g",
			want: "http://g/",
		},
		{
			name: "query only keeps base path",
			base: "http://a/b/c/d;p?q",
			ref:  "?y",
			want: "http://a/b/c/d;p?y",
		},
		{
			name: "fragment only keeps base query",
			base: "http://a/b/c/d;p?q",
			ref:  "#s",
			want: "http://a/b/c/d;p?q#s",
		},
		{
			name: "empty reference keeps query but drops fragment",
			base: "http://a/b/c/d;p?q#f",
			ref:  "",
			want: "http://a/b/c/d;p?q",
		},
		{
			name: "parent directory",
			base: "http://a/b/c/d;p?q",
			ref:  "../",
			want: "http://a/b/",
		},
		{
			name: "two levels up",
			base: "http://a/b/c/d;p?q",
			ref:  "../../g",
			want: "http://a/g",
		},
		{
			name: "cannot climb above root",
			base: "http://a/b/c/d;p?q",
			ref:  "../../../../g",
			want: "http://a/g",
		},
		{
			name: "reference with query and fragment",
			base: "http://a/b/c/d;p?q",
			ref:  "g?y#s",
			want: "http://a/b/c/g?y#s",
		},
		{
			name: "dotdot from short path",
			base: "http://a/b/c",
			ref:  "../d",
			want: "http://a/d",
		},
		{
			name: "same-scheme reference without slashes is relative",
			base: "http://a/b/c/d;p?q",
			ref:  "http:g",
			want: "http://a/b/c/g",
		},
		{
			name: "absolute reference replaces everything",
			base: "http://a/b/c",
			ref:  "https://x.example/y",
			want: "https://x.example/y",
		},
		{
			name: "backslash acts as slash in special reference",
			base: "http://a/b/c",
			ref:  "\\d",
			want: "http://a/d",
		},
		{
			name: "file drive letter survives dotdot",
			base: "file:///C:/a/b",
			ref:  "../../x",
			want: "file:///C:/x",
		},
		{
			name: "file absolute path keeps base drive",
			base: "file:///C:/a/",
			ref:  "/x",
			want: "file:///C:/x",
		},
		{
			// A drive-letter-looking reference is a valid scheme, so it
			// parses absolute instead of staying on the file base.
			name: "drive letter reference parses as its own scheme",
			base: "file:///C:/a/",
			ref:  "D:/y",
			want: "d:/y",
		},
		{
			name: "file host is inherited",
			base: "file://server/share/a",
			ref:  "b",
			want: "file://server/share/b",
		},
		{
			name: "fragment against cannot-be-a-base",
			base: "data:text/plain,foo",
			ref:  "#bar",
			want: "data:text/plain,foo#bar",
		},
		{
			name: "non-special base with structured path",
			base: "demo://h/a/b",
			ref:  "../c",
			want: "demo://h/c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := Parse(tt.base)
			require.NoError(t, err)
			got, err := base.Join(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestJoinErrors(t *testing.T) {
	base := MustParse("data:text/plain,foo")
	_, err := base.Join("rel")
	assert.ErrorIs(t, err, ErrRelativeURLWithCannotBeABaseBase)

	_, err = Options{}.Parse("rel")
	assert.ErrorIs(t, err, ErrRelativeURLWithoutBase)
}

func TestJoinChaining(t *testing.T) {
	base := MustParse("http://a/b/c/d")
	step, err := base.Join("../x/y")
	require.NoError(t, err)
	require.Equal(t, "http://a/b/x/y", step.String())

	// Chained resolution matches resolving against the intermediate result.
	final, err := step.Join("../z")
	require.NoError(t, err)
	assert.Equal(t, "http://a/b/z", final.String())

	direct, err := MustParse(step.String()).Join("../z")
	require.NoError(t, err)
	assert.True(t, final.Equal(direct))
}

func TestOptionsParseWithBase(t *testing.T) {
	base := MustParse("http://example.com/dir/")
	u, err := Options{Base: base}.Parse("page?x=1")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/dir/page?x=1", u.String())

	// An absolute input ignores the base.
	u, err = Options{Base: base}.Parse("ftp://other/")
	require.NoError(t, err)
	assert.Equal(t, "ftp://other/", u.String())
}
