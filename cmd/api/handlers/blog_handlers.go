package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/services"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List blog posts with filtering, sorting and pagination
// @Tags         blogs
// @Param        status    query  string  false  "draft|published|archived"
// @Param        category  query  string  false  "Category (exact match)"
// @Param        author    query  string  false  "Author (partial, case-insensitive)"
// @Param        search    query  string  false  "Substring match over title/content/tags"
// @Param        sortBy    query  string  false  "Sort field (default createdAt)"
// @Param        order     query  string  false  "asc|desc (default desc)"
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        limit     query  int     false  "Page size (default 10)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		in := dto.ListBlogsQuery{
			Status:   c.Query("status"),
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
			Author:   c.Query("author"),
			Search:   c.Query("search"),
			SortBy:   c.Query("sortBy"),
			Order:    c.Query("order"),
			Page:     page,
			Limit:    limit,
		}

		items, pag, err := svc.List(c.Request.Context(), in)
		if err != nil {
			fail(c, err, "Error fetching blogs")
			return
		}
		paginated(c, items, pag)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Blog not found")
			return
		}
		ok(c, blog)
	}
}

// GetBlogBySlugHandler godoc
// @Summary      Get blog by slug
// @Description  Fetch a post by slug; increments its view counter
// @Tags         blogs
// @Param        slug  path  string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/slug/{slug} [get]
func GetBlogBySlugHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			fail(c, err, "Blog not found")
			return
		}
		ok(c, blog)
	}
}

// ListPublishedBlogsHandler godoc
// @Summary      List published blogs
// @Tags         blogs
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/published [get]
func ListPublishedBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		items, pag, err := svc.ListPublished(c.Request.Context(), page, limit)
		if err != nil {
			fail(c, err, "Error fetching published blogs")
			return
		}
		paginated(c, items, pag)
	}
}

// ListBlogsByCategoryHandler godoc
// @Summary      List published blogs in a category
// @Tags         blogs
// @Param        category  path  string  true  "Category name"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/category/{category} [get]
func ListBlogsByCategoryHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		items, pag, err := svc.ListByCategory(c.Request.Context(), c.Param("category"), page, limit)
		if err != nil {
			fail(c, err, "Error fetching blogs by category")
			return
		}
		paginated(c, items, pag)
	}
}

// ListBlogsByTagHandler godoc
// @Summary      List published blogs carrying a tag
// @Tags         blogs
// @Param        tag  path  string  true  "Tag"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/tag/{tag} [get]
func ListBlogsByTagHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		items, pag, err := svc.ListByTag(c.Request.Context(), c.Param("tag"), page, limit)
		if err != nil {
			fail(c, err, "Error fetching blogs by tag")
			return
		}
		paginated(c, items, pag)
	}
}

// ListBlogsByAuthorHandler godoc
// @Summary      List published blogs by author
// @Tags         blogs
// @Param        author  path  string  true  "Author name (partial match)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/author/{author} [get]
func ListBlogsByAuthorHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		items, pag, err := svc.ListByAuthor(c.Request.Context(), c.Param("author"), page, limit)
		if err != nil {
			fail(c, err, "Error fetching blogs by author")
			return
		}
		paginated(c, items, pag)
	}
}

// SearchBlogsHandler godoc
// @Summary      Full-text search over published blogs
// @Description  Relevance-ranked text search; ordering is by score, not sortBy
// @Tags         blogs
// @Param        q  query  string  true  "Search term"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /blogs/search [get]
func SearchBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			badRequest(c, "Search query is required")
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		items, err := svc.Search(c.Request.Context(), q, limit)
		if err != nil {
			fail(c, err, "Error searching blogs")
			return
		}
		ok(c, items)
	}
}

// ListPopularBlogsHandler godoc
// @Summary      Most viewed published blogs
// @Tags         blogs
// @Param        limit  query  int  false  "Max results (default 10)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/popular [get]
func ListPopularBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		items, err := svc.Popular(c.Request.Context(), limit)
		if err != nil {
			fail(c, err, "Error fetching popular blogs")
			return
		}
		ok(c, items)
	}
}

// ListRecentBlogsHandler godoc
// @Summary      Most recently published blogs
// @Tags         blogs
// @Param        limit  query  int  false  "Max results (default 10)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /blogs/recent [get]
func ListRecentBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		items, err := svc.Recent(c.Request.Context(), limit)
		if err != nil {
			fail(c, err, "Error fetching recent blogs")
			return
		}
		ok(c, items)
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog post
// @Description  Runs the write pipeline: normalize, validate, slug, derive, persist
// @Tags         blogs
// @Accept       json
// @Param        blog  body  dto.BlogInput  true  "Blog draft"
// @Produce      json
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		blog, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			fail(c, err, "Error creating blog")
			return
		}
		created(c, blog, "Blog created successfully")
	}
}

// UpdateBlogHandler godoc
// @Summary      Update a blog post
// @Description  Partial update through the write pipeline; no upsert
// @Tags         blogs
// @Accept       json
// @Param        id    path  string         true  "ObjectID"
// @Param        blog  body  dto.BlogInput  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		blog, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			fail(c, err, "Error updating blog")
			return
		}
		okMessage(c, blog, "Blog updated successfully")
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog post
// @Description  Removes the post; associated local image files are cleaned up best-effort
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err, "Error deleting blog")
			return
		}
		okMessage(c, nil, "Blog and associated images deleted successfully")
	}
}

// PublishBlogHandler godoc
// @Summary      Publish a blog post
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id}/publish [patch]
func PublishBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Publish(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Error publishing blog")
			return
		}
		okMessage(c, blog, "Blog published successfully")
	}
}

// ArchiveBlogHandler godoc
// @Summary      Archive a blog post
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id}/archive [patch]
func ArchiveBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Archive(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Error archiving blog")
			return
		}
		okMessage(c, blog, "Blog archived successfully")
	}
}

// LikeBlogHandler godoc
// @Summary      Like a blog post
// @Description  Increments the likes counter by exactly 1
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /blogs/{id}/like [patch]
func LikeBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.Like(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Error liking blog")
			return
		}
		okMessage(c, blog, "Blog liked successfully")
	}
}
