package main

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/campusfeed/campusfeed-be/app"
	"github.com/campusfeed/campusfeed-be/cache"
	"github.com/campusfeed/campusfeed-be/config"
	"github.com/campusfeed/campusfeed-be/db/mysql"
	"github.com/campusfeed/campusfeed-be/observability"
	"github.com/campusfeed/campusfeed-be/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger := observability.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("invalid configuration", err)
	}

	database, err := mysql.GetDatabase(cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		log.Fatal("received err when attempting to connect to DB", err)
	}
	defer database.Close()

	recencyCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Fatal("invalid redis address", err)
	}

	refresher := app.NewCacheRefresher(database, recencyCache, logger)
	feedService := app.NewFeedService(database, refresher)
	likeService := app.NewLikeService(database, refresher)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Split(cfg.FEOrigins, ";"),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.AddFeedRoutes(&r.RouterGroup, feedService, database)
	routes.AddLikeRoutes(&r.RouterGroup, likeService)
	routes.AddCommentRoutes(&r.RouterGroup, database)
	routes.AddPostRoutes(&r.RouterGroup, database)
	routes.AddHealthCheckRoutes(&r.RouterGroup)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("error when attempting to run web server", err)
	}
}
