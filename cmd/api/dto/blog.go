package dto

import (
	"time"

	"bloomie-blog/models"
)

// BlogInput is the request body for creating (POST) and updating (PUT) a
// blog post. Every field is a pointer so the write pipeline can tell
// "absent" apart from an explicit zero value: absent derived fields are
// computed, explicitly supplied ones always win over derivation.
type BlogInput struct {
	Title           *string             `json:"title"`
	Slug            *string             `json:"slug"`
	Content         *string             `json:"content"`
	Excerpt         *string             `json:"excerpt"`
	Author          *string             `json:"author"`
	Categories      *[]string           `json:"categories"`
	Tags            *[]string           `json:"tags"`
	Images          *[]models.BlogImage `json:"images"`
	Status          *string             `json:"status"`
	PublishedDate   *time.Time          `json:"publishedDate"`
	PublishedTime   *string             `json:"publishedTime"`
	ReadTime        *int                `json:"readTime"`
	MetaTitle       *string             `json:"metaTitle"`
	MetaDescription *string             `json:"metaDescription"`
	Keywords        *[]string           `json:"keywords"`
	AllowComments   *bool               `json:"allowComments"`
}

// ListBlogsQuery mirrors the list endpoint's query parameters.
type ListBlogsQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Author   string `form:"author"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
