package slugify_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloomie-blog/slugify"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World Test", "hello-world-test"},
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"What's New: Go 1.25?", "whats-new-go-125"},
		{"C++ & Rust", "c-rust"},
		{"already-a-slug", "already-a-slug"},
		{"MixedCASE Title", "mixedcase-title"},
		{"multiple   spaces", "multiple-spaces"},
		{"dots.and.colons:here", "dotsandcolonshere"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify.Make(tc.title), "title %q", tc.title)
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	re := regexp.MustCompile(`^[a-z0-9-]*$`)
	titles := []string{
		"Üñíçødé Títle", "日本語のタイトル", "tab\there", "a  --  b",
	}
	for _, title := range titles {
		got := slugify.Make(title)
		assert.True(t, re.MatchString(got), "Make(%q) = %q", title, got)
		assert.False(t, strings.HasPrefix(got, "-"))
		assert.False(t, strings.HasSuffix(got, "-"))
	}
}

func TestUniqueNoCollision(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) { return false, nil }

	slug, err := slugify.Unique(context.Background(), "My First Post", exists)
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", slug)
}

func TestUniqueCounterSuffix(t *testing.T) {
	taken := map[string]bool{"my-post": true, "my-post-2": true}
	exists := func(ctx context.Context, slug string) (bool, error) { return taken[slug], nil }

	slug, err := slugify.Unique(context.Background(), "My Post", exists)
	require.NoError(t, err)
	assert.Equal(t, "my-post-3", slug)
}

func TestUniqueEmptyTitleFallsBackToRandom(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) { return false, nil }

	slug, err := slugify.Unique(context.Background(), "!!!", exists)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "post-"))
	assert.Len(t, slug, len("post-")+8)
}

func TestUniquePropagatesExistsError(t *testing.T) {
	wantErr := errors.New("store down")
	exists := func(ctx context.Context, slug string) (bool, error) { return false, wantErr }

	_, err := slugify.Unique(context.Background(), "My Post", exists)
	assert.ErrorIs(t, err, wantErr)
}

func TestUniqueTimestampAfterExhaustingCounters(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) { return true, nil }

	slug, err := slugify.Unique(context.Background(), "Busy Title", exists)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "busy-title-"))
	// timestamp suffix, not a small counter
	suffix := strings.TrimPrefix(slug, "busy-title-")
	assert.Greater(t, len(suffix), 10)
}

func TestWithTimestamp(t *testing.T) {
	slug := slugify.WithTimestamp("hello")
	assert.True(t, strings.HasPrefix(slug, "hello-"))

	// empty base still yields a usable slug
	slug = slugify.WithTimestamp("")
	assert.True(t, strings.HasPrefix(slug, "post-"))
}
