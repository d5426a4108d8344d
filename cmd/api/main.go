package main

import (
	"context"
	"log"
	"net/http"

	"bloomie-blog/cmd/api/router"
	"bloomie-blog/cmd/internal/logger"
	"bloomie-blog/config"
	"bloomie-blog/db"
	"bloomie-blog/uploads"
)

// @title           Bloomie Blog API
// @version         1.0
// @description     Content-management API for blog posts, categories and banners
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	imageStore, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes())
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(cfg, imageStore)
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
