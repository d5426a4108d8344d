package handlers

import (
	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/services"
)

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Param        all  query  bool  false  "Include inactive categories"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("all") != "true"
		items, err := svc.List(c.Request.Context(), activeOnly)
		if err != nil {
			fail(c, err, "Error fetching categories")
			return
		}
		ok(c, items)
	}
}

// GetCategoryHandler godoc
// @Summary      Get category by id
// @Tags         categories
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /categories/{id} [get]
func GetCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Category not found")
			return
		}
		ok(c, category)
	}
}

// CreateCategoryHandler godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Param        category  body  dto.CategoryInput  true  "Category"
// @Produce      json
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /categories [post]
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		category, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			fail(c, err, "Error creating category")
			return
		}
		created(c, category, "Category created successfully")
	}
}

// UpdateCategoryHandler godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Param        id        path  string             true  "ObjectID"
// @Param        category  body  dto.CategoryInput  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /categories/{id} [put]
func UpdateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		category, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			fail(c, err, "Error updating category")
			return
		}
		okMessage(c, category, "Category updated successfully")
	}
}

// DeleteCategoryHandler godoc
// @Summary      Delete a category
// @Tags         categories
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /categories/{id} [delete]
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err, "Error deleting category")
			return
		}
		okMessage(c, nil, "Category deleted successfully")
	}
}
