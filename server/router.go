package server

import (
	"time"

	httpHandler "popular-videos/interfaces/http"
	"popular-videos/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	popularHandler httpHandler.IPopularHandler,
	pageHandler httpHandler.IPageHandler,
	healthHandler httpHandler.IHealthHandler,
	allowOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	router.GET("/", pageHandler.Index)
	router.GET("/popular", pageHandler.Popular)
	router.GET("/popular/view", pageHandler.PopularView)

	api := router.Group("api")
	youtube := api.Group("/youtube")
	{
		youtube.GET("/popular", popularHandler.GetPopularVideos)
	}

	return router
}
