package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is one of the known blog statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// BlogImage is one image attached to a post. URL is either an absolute
// http(s) URL or a base64 data URI.
type BlogImage struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt" json:"alt"`
	Caption string `bson:"caption" json:"caption"`
}

// Blog represents a blog post document.
// Collection: blogs
//
// BSON field names keep the original camelCase wire schema so the admin
// panel and any stored documents stay compatible.
type Blog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Slug            string             `bson:"slug" json:"slug"`
	Content         string             `bson:"content" json:"content"`
	Excerpt         string             `bson:"excerpt" json:"excerpt"`
	Author          string             `bson:"author" json:"author"`
	Categories      []string           `bson:"categories" json:"categories"`
	Tags            []string           `bson:"tags" json:"tags"`
	Images          []BlogImage        `bson:"images" json:"images"`
	Status          string             `bson:"status" json:"status"`
	PublishedDate   time.Time          `bson:"publishedDate" json:"publishedDate"`
	PublishedTime   string             `bson:"publishedTime,omitempty" json:"publishedTime,omitempty"`
	Views           int64              `bson:"views" json:"views"`
	Likes           int64              `bson:"likes" json:"likes"`
	ReadTime        int                `bson:"readTime" json:"readTime"`
	MetaTitle       string             `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string             `bson:"metaDescription" json:"metaDescription"`
	Keywords        []string           `bson:"keywords" json:"keywords"`
	AllowComments   bool               `bson:"allowComments" json:"allowComments"`
	CommentsCount   int64              `bson:"commentsCount" json:"commentsCount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
