package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloomie-blog/models"
	"bloomie-blog/validation"
)

func validBlog() *models.Blog {
	return &models.Blog{
		Title:      "A perfectly fine title",
		Content:    strings.Repeat("body text ", 10),
		Author:     "Jane Writer",
		Categories: []string{"tech"},
		Status:     models.StatusDraft,
	}
}

func TestValidateBlogAcceptsValidRecord(t *testing.T) {
	b := validBlog()
	validation.NormalizeBlog(b)
	errs := validation.ValidateBlog(b)
	assert.NoError(t, errs.OrNil())
}

func TestValidateBlogCollectsAllViolations(t *testing.T) {
	b := &models.Blog{
		Title:         "abc",
		Content:       "too short",
		Author:        "x",
		PublishedTime: "25:00",
		Status:        "bogus",
		Views:         -1,
	}
	validation.NormalizeBlog(b)
	errs := validation.ValidateBlog(b)

	require.Error(t, errs.OrNil())
	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("content"))
	assert.True(t, errs.Has("author"))
	assert.True(t, errs.Has("categories"))
	assert.True(t, errs.Has("publishedTime"))
	assert.True(t, errs.Has("status"))
	assert.True(t, errs.Has("views"))
}

func TestValidateBlogRequiredFields(t *testing.T) {
	b := &models.Blog{}
	errs := validation.ValidateBlog(b)

	assert.True(t, errs.Has("title"))
	assert.True(t, errs.Has("content"))
	assert.True(t, errs.Has("author"))
	assert.True(t, errs.Has("categories"))
}

func TestValidateBlogPublishedTime(t *testing.T) {
	good := []string{"00:00", "9:30", "09:30", "23:59", "2:05"}
	bad := []string{"24:00", "12:60", "7", "07:5", "noon", "12:345"}

	for _, v := range good {
		b := validBlog()
		b.PublishedTime = v
		assert.False(t, validation.ValidateBlog(b).Has("publishedTime"), "time %q", v)
	}
	for _, v := range bad {
		b := validBlog()
		b.PublishedTime = v
		assert.True(t, validation.ValidateBlog(b).Has("publishedTime"), "time %q", v)
	}
}

func TestValidateBlogImageURLs(t *testing.T) {
	good := []string{
		"https://cdn.example.com/a.png",
		"http://example.com/b.jpg",
		"data:image/png;base64,iVBORw0KGgo=",
	}
	bad := []string{"ftp://example.com/a.png", "/images/a.png", "not a url"}

	for _, u := range good {
		b := validBlog()
		b.Images = []models.BlogImage{{URL: u}}
		assert.False(t, validation.ValidateBlog(b).Has("images"), "url %q", u)
	}
	for _, u := range bad {
		b := validBlog()
		b.Images = []models.BlogImage{{URL: u}}
		assert.True(t, validation.ValidateBlog(b).Has("images"), "url %q", u)
	}
}

func TestValidateBlogTagLength(t *testing.T) {
	b := validBlog()
	b.Tags = []string{"ok", strings.Repeat("x", 31)}
	assert.True(t, validation.ValidateBlog(b).Has("tags"))
}

func TestNormalizeBlog(t *testing.T) {
	b := &models.Blog{
		Title:      "  Spaced Title  ",
		Author:     " Jane ",
		Categories: []string{" tech ", "tech", "", "life"},
		Tags:       []string{"Go", "go", " GO ", "web"},
		Keywords:   []string{"API", "api"},
	}
	validation.NormalizeBlog(b)

	assert.Equal(t, "Spaced Title", b.Title)
	assert.Equal(t, "Jane", b.Author)
	assert.Equal(t, []string{"tech", "life"}, b.Categories)
	assert.Equal(t, []string{"go", "web"}, b.Tags)
	assert.Equal(t, []string{"api"}, b.Keywords)
}

func TestErrorsOrNil(t *testing.T) {
	var errs validation.Errors
	// a typed nil slice must not leak into the error interface
	assert.Nil(t, errs.OrNil())

	errs = validation.Errors{{Field: "title", Message: "is required"}}
	err := errs.OrNil()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title: is required")
}
