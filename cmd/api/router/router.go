package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/handlers"
	"bloomie-blog/cmd/api/middleware"
	"bloomie-blog/cmd/api/services"
	"bloomie-blog/config"
	"bloomie-blog/db"
	"bloomie-blog/repositories"
	"bloomie-blog/uploads"
)

func New(cfg config.AppConfig, imageStore *uploads.Store) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/api/health", healthHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded images
	r.Static("/images", cfg.Uploads.Dir)

	api := r.Group("/api")
	{
		blogRepo := repositories.NewBlogRepository(db.Database())
		categoryRepo := repositories.NewCategoryRepository(db.Database())
		bannerRepo := repositories.NewBannerRepository(db.Database())

		blogSvc := services.NewBlogService(blogRepo, imageStore)
		api.GET("/blogs", handlers.ListBlogsHandler(blogSvc))
		api.GET("/blogs/published", handlers.ListPublishedBlogsHandler(blogSvc))
		api.GET("/blogs/popular", handlers.ListPopularBlogsHandler(blogSvc))
		api.GET("/blogs/recent", handlers.ListRecentBlogsHandler(blogSvc))
		api.GET("/blogs/search", handlers.SearchBlogsHandler(blogSvc))
		api.GET("/blogs/slug/:slug", handlers.GetBlogBySlugHandler(blogSvc))
		api.GET("/blogs/category/:category", handlers.ListBlogsByCategoryHandler(blogSvc))
		api.GET("/blogs/tag/:tag", handlers.ListBlogsByTagHandler(blogSvc))
		api.GET("/blogs/author/:author", handlers.ListBlogsByAuthorHandler(blogSvc))
		api.GET("/blogs/:id", handlers.GetBlogHandler(blogSvc))
		api.POST("/blogs", handlers.CreateBlogHandler(blogSvc))
		api.PUT("/blogs/:id", handlers.UpdateBlogHandler(blogSvc))
		api.DELETE("/blogs/:id", handlers.DeleteBlogHandler(blogSvc))
		api.PATCH("/blogs/:id/publish", handlers.PublishBlogHandler(blogSvc))
		api.PATCH("/blogs/:id/archive", handlers.ArchiveBlogHandler(blogSvc))
		api.PATCH("/blogs/:id/like", handlers.LikeBlogHandler(blogSvc))

		categorySvc := services.NewCategoryService(categoryRepo)
		api.GET("/categories", handlers.ListCategoriesHandler(categorySvc))
		api.GET("/categories/:id", handlers.GetCategoryHandler(categorySvc))
		api.POST("/categories", handlers.CreateCategoryHandler(categorySvc))
		api.PUT("/categories/:id", handlers.UpdateCategoryHandler(categorySvc))
		api.DELETE("/categories/:id", handlers.DeleteCategoryHandler(categorySvc))

		bannerSvc := services.NewBannerService(bannerRepo)
		api.GET("/banners", handlers.ListBannersHandler(bannerSvc))
		api.GET("/banners/active", handlers.GetActiveBannerHandler(bannerSvc))
		api.GET("/banners/:id", handlers.GetBannerHandler(bannerSvc))
		api.POST("/banners", handlers.CreateBannerHandler(bannerSvc))
		api.PUT("/banners/:id", handlers.UpdateBannerHandler(bannerSvc))
		api.DELETE("/banners/:id", handlers.DeleteBannerHandler(bannerSvc))

		statsSvc := services.NewStatsService(blogRepo)
		api.GET("/statistics", handlers.GetStatisticsHandler(statsSvc))

		api.POST("/upload-image", handlers.UploadImageHandler(imageStore))
		api.POST("/upload-images", handlers.UploadImagesHandler(imageStore))
		api.DELETE("/delete-image/:filename", handlers.DeleteImageHandler(imageStore))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Response{Success: false, Message: "Route not found"})
	})

	return r
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	}
}
