package api

import (
	"github.com/rentalhub/rental-recommender/api/handlers"
	"github.com/rentalhub/rental-recommender/api/middleware"
	"github.com/rentalhub/rental-recommender/configs"
	"github.com/rentalhub/rental-recommender/database"
	"github.com/rentalhub/rental-recommender/pkg/recommender"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter 设置API路由
func SetupRouter(router *gin.Engine, cfg configs.Server, repo *database.SnapshotRepository, rec *recommender.Recommender, logger *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	recommendations := handlers.NewRecommendationHandler(repo, rec, logger)

	router.GET("/health", recommendations.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公共API
	public := router.Group("/api")

	// 需要认证的API，令牌由账号服务使用同一密钥签发
	authorized := router.Group("/api")
	authorized.Use(middleware.Auth(repo))

	recommendations.RegisterRoutes(public, authorized)
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	return c
}
