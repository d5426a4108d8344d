package slugify

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// removed is the character set stripped outright before separator folding:
// * + ~ . ( ) ' " ! : @
const removed = "*+~.()'\"!:@"

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make converts a title into a URL-safe slug: lowercase, strip the removed
// character set, fold every run of other non-alphanumerics into a single
// hyphen, and trim leading/trailing hyphens. The result matches
// ^[a-z0-9-]*$ and may be empty for all-punctuation input; callers that
// need a non-empty slug go through Unique.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if strings.ContainsRune(removed, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			pendingHyphen = true
		}
	}
	return b.String()
}

// Random returns a fallback slug for titles that strip down to nothing.
func Random() string {
	return "post-" + uuid.NewString()[:8]
}

// WithTimestamp appends a millisecond timestamp suffix. Used as a
// last-resort disambiguator when a unique-index insert loses a race.
func WithTimestamp(base string) string {
	if base == "" {
		base = Random()
	}
	return base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Unique derives a slug from title that does not collide with any existing
// slug, as reported by exists. Collisions get a counter suffix (-2, -3, ...).
// The existence check is advisory; the unique index on the collection is the
// real guarantee and callers retry with WithTimestamp on a duplicate key.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		base = Random()
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if i > 50 {
			// pathological collision density; fall back to a timestamp
			return WithTimestamp(base), nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
