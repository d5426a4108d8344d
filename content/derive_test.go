package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloomie-blog/content"
)

func TestStripTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "just words", "just words"},
		{"simple markup", "<p>Hello <b>world</b></p>", "Hello world"},
		{"nested markup", "<div><p>a<span>b</span></p>c</div>", "abc"},
		{"entities unescaped", "fish &amp; chips", "fish & chips"},
		{"unclosed tag", "<p>open", "open"},
		{"text between siblings kept", "<p>one</p> and <p>two</p>", "one and two"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, content.StripTags(tc.in))
		})
	}
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 0, content.ReadTime(""))
	assert.Equal(t, 0, content.ReadTime("   "))
	assert.Equal(t, 1, content.ReadTime("one"))
	assert.Equal(t, 1, content.ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, content.ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 2, content.ReadTime(strings.Repeat("word ", 400)))
	assert.Equal(t, 3, content.ReadTime(strings.Repeat("word ", 401)))
}

func TestDeriveShortContent(t *testing.T) {
	d := content.Derive("<p>Hello world</p>")

	assert.Equal(t, "Hello world", d.PlainText)
	assert.Equal(t, "Hello world...", d.Excerpt)
	assert.Equal(t, "Hello world", d.MetaDescription)
	assert.Equal(t, 1, d.ReadTime)
}

func TestDeriveTruncation(t *testing.T) {
	long := strings.Repeat("a", 500)
	d := content.Derive("<p>" + long + "</p>")

	assert.Equal(t, strings.Repeat("a", 200)+"...", d.Excerpt)
	assert.Equal(t, strings.Repeat("a", 160), d.MetaDescription)
}

func TestDeriveTruncatesOnRunesNotBytes(t *testing.T) {
	long := strings.Repeat("ü", 300)
	d := content.Derive(long)

	assert.Equal(t, strings.Repeat("ü", 200)+"...", d.Excerpt)
	assert.Equal(t, strings.Repeat("ü", 160), d.MetaDescription)
}

func TestDeriveReadTimeFromStrippedText(t *testing.T) {
	// 250 words of markup-wrapped content reads as 2 minutes
	var b strings.Builder
	for i := 0; i < 250; i++ {
		b.WriteString("<b>word</b> ")
	}
	d := content.Derive(b.String())
	assert.Equal(t, 2, d.ReadTime)
}
