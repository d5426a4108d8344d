package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/services"
	"bloomie-blog/repositories"
)

// ListBannersHandler godoc
// @Summary      List banners
// @Tags         banners
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /banners [get]
func ListBannersHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, err, "Error fetching banners")
			return
		}
		ok(c, items)
	}
}

// GetActiveBannerHandler godoc
// @Summary      Get the active banner
// @Description  Returns the most recently created active banner, or null data when none is active
// @Tags         banners
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /banners/active [get]
func GetActiveBannerHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		banner, err := svc.Active(c.Request.Context())
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// no active banner is not an error for the front page
				ok(c, nil)
				return
			}
			fail(c, err, "Error fetching active banner")
			return
		}
		ok(c, banner)
	}
}

// GetBannerHandler godoc
// @Summary      Get banner by id
// @Tags         banners
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /banners/{id} [get]
func GetBannerHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		banner, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, "Banner not found")
			return
		}
		ok(c, banner)
	}
}

// CreateBannerHandler godoc
// @Summary      Create a banner
// @Tags         banners
// @Accept       json
// @Param        banner  body  dto.BannerInput  true  "Banner"
// @Produce      json
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /banners [post]
func CreateBannerHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BannerInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		banner, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			fail(c, err, "Error creating banner")
			return
		}
		created(c, banner, "Banner created successfully")
	}
}

// UpdateBannerHandler godoc
// @Summary      Update a banner
// @Tags         banners
// @Accept       json
// @Param        id      path  string           true  "ObjectID"
// @Param        banner  body  dto.BannerInput  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /banners/{id} [put]
func UpdateBannerHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BannerInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		banner, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			fail(c, err, "Error updating banner")
			return
		}
		okMessage(c, banner, "Banner updated successfully")
	}
}

// DeleteBannerHandler godoc
// @Summary      Delete a banner
// @Tags         banners
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /banners/{id} [delete]
func DeleteBannerHandler(svc *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err, "Error deleting banner")
			return
		}
		okMessage(c, nil, "Banner deleted successfully")
	}
}
