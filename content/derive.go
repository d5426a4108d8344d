// Package content derives presentation metadata (excerpt, meta description,
// read time) from raw HTML blog content.
package content

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	excerptRunes  = 200
	metaDescRunes = 160
	wordsPerMin   = 200
)

// Derived holds the fields computed from a post's HTML content. The write
// pipeline only applies a derived value when the caller did not supply the
// field explicitly.
type Derived struct {
	PlainText       string
	Excerpt         string
	MetaDescription string
	ReadTime        int
}

// StripTags removes all HTML markup from s and returns the concatenated
// text content. Text between and inside tags is preserved; entities are
// unescaped. Malformed fragments never leak partial tags into the output
// because tokenization, not string surgery, does the stripping.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way we keep what we have
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Derive computes excerpt, meta description and read time from HTML content.
func Derive(htmlContent string) Derived {
	plain := StripTags(htmlContent)

	d := Derived{
		PlainText:       plain,
		MetaDescription: truncateRunes(plain, metaDescRunes),
		ReadTime:        ReadTime(plain),
	}
	d.Excerpt = truncateRunes(plain, excerptRunes) + "..."
	return d
}

// ReadTime estimates reading minutes for already-stripped plain text:
// ceil(words / 200), 0 for empty text.
func ReadTime(plain string) int {
	words := len(strings.Fields(plain))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMin - 1) / wordsPerMin
}

func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
