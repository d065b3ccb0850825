package main

import (
	"flag"
	"log"

	"github.com/rentalhub/rental-recommender/api"
	"github.com/rentalhub/rental-recommender/configs"
	"github.com/rentalhub/rental-recommender/database"
	"github.com/rentalhub/rental-recommender/pkg/recommender"
	"github.com/rentalhub/rental-recommender/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "populate an empty database with demo data")
	flag.Parse()

	// 加载配置
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 初始化JWT
	utils.InitJWT(cfg)

	// 初始化数据库连接
	if err := database.Initialize(cfg.Database, logger); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(logger)

	if *seed {
		if err := database.Seed(database.DB); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Info("Demo data seeded")
	}

	rec, err := recommender.NewRecommender(cfg.Recommender)
	if err != nil {
		logger.Fatal("Invalid recommender configuration", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// 设置路由
	api.SetupRouter(router, cfg.Server, database.NewSnapshotRepository(database.DB), rec, logger)

	// 启动服务器
	logger.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
