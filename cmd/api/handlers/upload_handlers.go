package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/uploads"
)

// maxFilesPerUpload caps the multi-file endpoint.
const maxFilesPerUpload = 5

func uploadFail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, uploads.ErrNotImage), errors.Is(err, uploads.ErrTooLarge):
		c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: err.Error()})
	case errors.Is(err, uploads.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Response{Success: false, Message: "Image not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Response{Success: false, Message: message, Error: err.Error()})
	}
}

// UploadImageHandler godoc
// @Summary      Upload a single image
// @Tags         uploads
// @Accept       multipart/form-data
// @Param        image  formData  file  true  "Image file (max 5MB)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /upload-image [post]
func UploadImageHandler(store *uploads.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("image")
		if err != nil {
			badRequest(c, "No image file provided")
			return
		}
		stored, err := store.Save(fh)
		if err != nil {
			uploadFail(c, err, "Error uploading image")
			return
		}
		okMessage(c, stored, "Image uploaded successfully")
	}
}

// UploadImagesHandler godoc
// @Summary      Upload multiple images
// @Tags         uploads
// @Accept       multipart/form-data
// @Param        images  formData  file  true  "Image files (max 5, 5MB each)"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /upload-images [post]
func UploadImagesHandler(store *uploads.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			badRequest(c, "Invalid multipart form")
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			badRequest(c, "No image files provided")
			return
		}
		if len(files) > maxFilesPerUpload {
			badRequest(c, "Too many files, maximum is 5 per upload")
			return
		}

		items := make([]*uploads.Stored, 0, len(files))
		for _, fh := range files {
			stored, err := store.Save(fh)
			if err != nil {
				// reject the whole batch on the first bad file
				uploadFail(c, err, "Error uploading images")
				return
			}
			items = append(items, stored)
		}
		okMessage(c, items, "Images uploaded successfully")
	}
}

// DeleteImageHandler godoc
// @Summary      Delete an uploaded image
// @Tags         uploads
// @Param        filename  path  string  true  "Stored filename"
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /delete-image/{filename} [delete]
func DeleteImageHandler(store *uploads.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Remove(c.Param("filename")); err != nil {
			uploadFail(c, err, "Error deleting image")
			return
		}
		okMessage(c, nil, "Image deleted successfully")
	}
}
