package configs

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rentalhub/rental-recommender/pkg/recommender"
)

// Server HTTP服务配置
type Server struct {
	Port           string   `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"` // debug / release / test
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Database 数据库配置
type Database struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Path     string `mapstructure:"path"` // sqlite 文件路径
}

// JWT 令牌配置
type JWT struct {
	Secret    string `mapstructure:"secret"`
	ExpiresIn int    `mapstructure:"expires_in"` // 过期时间（小时）
}

// Log 日志配置
type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	Server      Server             `mapstructure:"server"`
	Database    Database           `mapstructure:"database"`
	JWT         JWT                `mapstructure:"jwt"`
	Log         Log                `mapstructure:"log"`
	Recommender recommender.Config `mapstructure:"recommender"`
}

// Load 加载配置
// 顺序: 默认值 < config.yaml < 环境变量（.env 会先被加载到环境变量中）
func Load() (*Config, error) {
	return LoadFrom("./configs", ".")
}

// LoadFrom 从指定目录加载配置
func LoadFrom(paths ...string) (*Config, error) {
	// .env 不存在时直接使用系统环境变量
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "rental")
	v.SetDefault("database.path", "rental.db")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expires_in", 2)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	rc := recommender.DefaultConfig()
	v.SetDefault("recommender.top_n", rc.TopN)
	v.SetDefault("recommender.content_weight", rc.ContentWeight)
	v.SetDefault("recommender.similarity_weight", rc.SimilarityWeight)
	v.SetDefault("recommender.location_weight", rc.LocationWeight)
	v.SetDefault("recommender.location_match", rc.LocationMatch)
	v.SetDefault("recommender.location_miss", rc.LocationMiss)
	v.SetDefault("recommender.epsilon", rc.Epsilon)
	v.SetDefault("recommender.profile.wishlist", rc.Profile.Wishlist)
	v.SetDefault("recommender.profile.review", rc.Profile.Review)
	v.SetDefault("recommender.profile.default", rc.Profile.Default)
	v.SetDefault("recommender.ratings.wishlist", rc.Ratings.Wishlist)
	v.SetDefault("recommender.ratings.view", rc.Ratings.View)
	v.SetDefault("recommender.ratings.viewing_request", rc.Ratings.ViewingRequest)
	v.SetDefault("recommender.ratings.neutral", rc.Ratings.Neutral)
	v.SetDefault("recommender.factorization.factors", rc.Factorization.Factors)
	v.SetDefault("recommender.factorization.epochs", rc.Factorization.Epochs)
	v.SetDefault("recommender.factorization.learning_rate", rc.Factorization.LearningRate)
	v.SetDefault("recommender.factorization.regularization", rc.Factorization.Regularization)
	v.SetDefault("recommender.factorization.init_mean", rc.Factorization.InitMean)
	v.SetDefault("recommender.factorization.init_std_dev", rc.Factorization.InitStdDev)
	v.SetDefault("recommender.factorization.test_size", rc.Factorization.TestSize)
	v.SetDefault("recommender.factorization.seed", rc.Factorization.Seed)
	v.SetDefault("recommender.factorization.rating_min", rc.Factorization.RatingMin)
	v.SetDefault("recommender.factorization.rating_max", rc.Factorization.RatingMax)
}
