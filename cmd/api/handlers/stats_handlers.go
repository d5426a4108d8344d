package handlers

import (
	"github.com/gin-gonic/gin"

	"bloomie-blog/cmd/api/services"
)

// GetStatisticsHandler godoc
// @Summary      Dashboard statistics
// @Description  Post counts by status, total views and likes, and the per-category breakdown
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /statistics [get]
func GetStatisticsHandler(svc *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Compute(c.Request.Context())
		if err != nil {
			fail(c, err, "Error fetching statistics")
			return
		}
		ok(c, stats)
	}
}
