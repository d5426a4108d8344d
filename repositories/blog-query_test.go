package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloomie-blog/repositories"
)

func TestBuildDefaults(t *testing.T) {
	built := repositories.BlogQuery{}.Build()

	assert.Empty(t, built.Filter)
	assert.Equal(t, int64(0), built.Skip)
	assert.Equal(t, int64(10), built.Limit)
	assert.Equal(t, 1, built.Page)
	assert.Equal(t, bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}, built.Sort)
}

func TestBuildFilters(t *testing.T) {
	built := repositories.BlogQuery{
		Status:   "published",
		Category: "tech",
		Tag:      "go",
	}.Build()

	assert.Equal(t, "published", built.Filter["status"])
	assert.Equal(t, "tech", built.Filter["categories"])
	assert.Equal(t, "go", built.Filter["tags"])
}

func TestBuildAuthorIsCaseInsensitivePartialMatch(t *testing.T) {
	built := repositories.BlogQuery{Author: "jane"}.Build()

	re, ok := built.Filter["author"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "jane", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildAuthorEscapesRegexMeta(t *testing.T) {
	built := repositories.BlogQuery{Author: "a.b*c"}.Build()

	re := built.Filter["author"].(primitive.Regex)
	assert.Equal(t, `a\.b\*c`, re.Pattern)
}

func TestBuildSearchMatchesTitleContentTags(t *testing.T) {
	built := repositories.BlogQuery{Search: "kubernetes"}.Build()

	or, ok := built.Filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)

	fields := make([]string, 0, 3)
	for _, clause := range or {
		for k, v := range clause {
			fields = append(fields, k)
			re := v.(primitive.Regex)
			assert.Equal(t, "kubernetes", re.Pattern)
			assert.Equal(t, "i", re.Options)
		}
	}
	assert.ElementsMatch(t, []string{"title", "content", "tags"}, fields)
}

func TestBuildSortWhitelist(t *testing.T) {
	built := repositories.BlogQuery{SortBy: "views", Order: "asc"}.Build()
	assert.Equal(t, bson.D{
		{Key: "views", Value: 1},
		{Key: "_id", Value: 1},
	}, built.Sort)

	// unknown fields fall back to createdAt rather than reaching the store
	built = repositories.BlogQuery{SortBy: "$where"}.Build()
	assert.Equal(t, "createdAt", built.Sort[0].Key)
}

func TestBuildPagination(t *testing.T) {
	built := repositories.BlogQuery{Page: 3, Limit: 20}.Build()
	assert.Equal(t, int64(40), built.Skip)
	assert.Equal(t, int64(20), built.Limit)
	assert.Equal(t, 3, built.Page)

	// out-of-range values are clamped
	built = repositories.BlogQuery{Page: -5, Limit: 1000}.Build()
	assert.Equal(t, 1, built.Page)
	assert.Equal(t, int64(0), built.Skip)
	assert.Equal(t, int64(100), built.Limit)
}

func TestPages(t *testing.T) {
	built := repositories.BlogQuery{Limit: 10}.Build()

	assert.Equal(t, 0, built.Pages(0))
	assert.Equal(t, 1, built.Pages(1))
	assert.Equal(t, 1, built.Pages(10))
	assert.Equal(t, 2, built.Pages(11))
	assert.Equal(t, 5, built.Pages(41))
}
