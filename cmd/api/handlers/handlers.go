package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/services"
	"bloomie-blog/repositories"
	"bloomie-blog/validation"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data})
}

func okMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data, Message: message})
}

func created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, dto.Response{Success: true, Data: data, Message: message})
}

func paginated(c *gin.Context, data any, p dto.Pagination) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data, Pagination: &p})
}

// fail maps service errors onto the response envelope: aggregated
// validation errors and duplicates are 400, missing records 404, anything
// else a generic 500 with the message but no internals.
func fail(c *gin.Context, err error, message string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: message, Error: verrs})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: message, Error: err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Response{Success: false, Message: message})
	default:
		c.JSON(http.StatusInternalServerError, dto.Response{Success: false, Message: message, Error: err.Error()})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: message})
}

// pageParams reads the shared page/limit query parameters.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
