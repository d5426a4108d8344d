package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// sortable whitelists the fields a client may sort on; anything else falls
// back to createdAt.
var sortable = map[string]bool{
	"createdAt":     true,
	"updatedAt":     true,
	"publishedDate": true,
	"title":         true,
	"views":         true,
	"likes":         true,
	"readTime":      true,
}

// BlogQuery describes a composed list query over the blogs collection:
// optional filters, sort field/direction, and 1-based pagination.
type BlogQuery struct {
	Status   string
	Category string
	Tag      string
	Author   string // case-insensitive partial match
	Search   string // substring OR-match across title/content/tags
	SortBy   string // default createdAt
	Order    string // asc|desc, default desc
	Page     int    // default 1
	Limit    int    // default 10, capped at 100
}

// BuiltQuery is the store-ready form of a BlogQuery.
type BuiltQuery struct {
	Filter bson.M
	Sort   bson.D
	Skip   int64
	Limit  int64
	Page   int
}

// Build translates the query parameters into a Mongo filter, sort and
// skip/limit window. Pure, so the composition rules are unit-testable
// without a running store.
func (q BlogQuery) Build() BuiltQuery {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Category != "" {
		filter["categories"] = q.Category
	}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}
	if q.Author != "" {
		filter["author"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Author), Options: "i"}
	}
	if q.Search != "" {
		term := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": term},
			{"content": term},
			{"tags": term},
		}
	}

	sortBy := q.SortBy
	if !sortable[sortBy] {
		sortBy = "createdAt"
	}
	dir := -1
	if q.Order == "asc" {
		dir = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return BuiltQuery{
		Filter: filter,
		Sort: bson.D{
			{Key: sortBy, Value: dir},
			{Key: "_id", Value: dir},
		},
		Skip:  int64(page-1) * int64(limit),
		Limit: int64(limit),
		Page:  page,
	}
}

// Pages returns the number of pages for a total count under this query's
// effective limit: ceil(total/limit).
func (b BuiltQuery) Pages(total int64) int {
	if b.Limit <= 0 {
		return 0
	}
	return int((total + b.Limit - 1) / b.Limit)
}
