package database

import (
	"fmt"

	"github.com/rentalhub/rental-recommender/configs"
	"github.com/rentalhub/rental-recommender/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open 按驱动类型打开数据库连接
func Open(dbConfig configs.Database) (*gorm.DB, error) {
	var dsn string
	var dialector gorm.Dialector

	switch dbConfig.Driver {
	case "mysql":
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.DBName)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.Password, dbConfig.DBName)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dbConfig.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", dbConfig.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate 自动迁移数据库表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Feature{},
		&models.Property{},
		&models.PropertyPricing{},
		&models.PropertyLocation{},
		&models.WishList{},
		&models.PropertyView{},
		&models.Review{},
		&models.ViewingRequest{},
	)
}

// Initialize 初始化数据库连接
func Initialize(dbConfig configs.Database, log *zap.Logger) error {
	db, err := Open(dbConfig)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	DB = db
	log.Info("Database connected successfully", zap.String("driver", dbConfig.Driver))
	return nil
}

// Close 关闭数据库连接
func Close(log *zap.Logger) {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			log.Error("Failed to get database connection", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}
}
