package validation

import (
	"strings"

	"bloomie-blog/models"
)

// NormalizeBlog canonicalizes a blog record in place: trims string fields,
// lowercases tags and keywords, and de-duplicates categories and tags
// preserving first-seen order.
func NormalizeBlog(b *models.Blog) {
	b.Title = strings.TrimSpace(b.Title)
	b.Slug = strings.TrimSpace(b.Slug)
	b.Author = strings.TrimSpace(b.Author)
	b.Excerpt = strings.TrimSpace(b.Excerpt)
	b.MetaTitle = strings.TrimSpace(b.MetaTitle)
	b.MetaDescription = strings.TrimSpace(b.MetaDescription)
	b.PublishedTime = strings.TrimSpace(b.PublishedTime)

	b.Categories = dedupe(trimAll(b.Categories))
	b.Tags = dedupe(lowerAll(trimAll(b.Tags)))
	b.Keywords = dedupe(lowerAll(trimAll(b.Keywords)))

	for i := range b.Images {
		b.Images[i].URL = strings.TrimSpace(b.Images[i].URL)
		b.Images[i].Alt = strings.TrimSpace(b.Images[i].Alt)
		b.Images[i].Caption = strings.TrimSpace(b.Images[i].Caption)
	}
}

// ValidateBlog checks every field constraint on a normalized blog record
// and returns the full list of violations.
func ValidateBlog(b *models.Blog) Errors {
	var errs Errors

	checkLen(&errs, "title", b.Title, 5, 200, true)
	if b.Content == "" {
		errs.add("content", "is required")
	} else if runeLen(b.Content) < 50 {
		errs.add("content", "must be at least 50 characters")
	}
	checkLen(&errs, "author", b.Author, 2, 100, true)
	checkLen(&errs, "excerpt", b.Excerpt, 0, 500, false)
	checkLen(&errs, "metaTitle", b.MetaTitle, 0, 70, false)
	checkLen(&errs, "metaDescription", b.MetaDescription, 0, 160, false)

	if len(b.Categories) == 0 {
		errs.add("categories", "at least one category is required")
	}
	for _, tag := range b.Tags {
		if runeLen(tag) > 30 {
			errs.add("tags", "tag %q cannot exceed 30 characters", tag)
		}
	}

	for i, img := range b.Images {
		if img.URL == "" {
			errs.add("images", "image %d: url is required", i)
		} else if !imageURLRe.MatchString(img.URL) {
			errs.add("images", "image %d: url must be an http(s) URL or base64 data URI", i)
		}
		if runeLen(img.Alt) > 200 {
			errs.add("images", "image %d: alt text cannot exceed 200 characters", i)
		}
		if runeLen(img.Caption) > 300 {
			errs.add("images", "image %d: caption cannot exceed 300 characters", i)
		}
	}

	if b.Status != "" && !models.ValidStatus(b.Status) {
		errs.add("status", "%q is not a valid status", b.Status)
	}
	if b.PublishedTime != "" && !timeRe.MatchString(b.PublishedTime) {
		errs.add("publishedTime", "must match HH:MM (24-hour)")
	}

	if b.Views < 0 {
		errs.add("views", "cannot be negative")
	}
	if b.Likes < 0 {
		errs.add("likes", "cannot be negative")
	}
	if b.CommentsCount < 0 {
		errs.add("commentsCount", "cannot be negative")
	}
	if b.ReadTime < 0 {
		errs.add("readTime", "cannot be negative")
	}

	return errs
}
