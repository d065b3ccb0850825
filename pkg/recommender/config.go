package recommender

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContentWeight = errors.New("content weight must be between 0 and 1")
	ErrInvalidTopN          = errors.New("top_n must be positive")
)

// ProfileWeights 用户画像中各类交互的权重
type ProfileWeights struct {
	Wishlist float64 `mapstructure:"wishlist"`
	Review   float64 `mapstructure:"review"`
	Default  float64 `mapstructure:"default"`
}

// SyntheticRatings 协同过滤中各类交互对应的合成评分
type SyntheticRatings struct {
	Wishlist       float64 `mapstructure:"wishlist"`
	View           float64 `mapstructure:"view"`
	ViewingRequest float64 `mapstructure:"viewing_request"`
	// Neutral 全局没有任何评分时的冷启动默认值
	Neutral float64 `mapstructure:"neutral"`
}

// FactorizationConfig 矩阵分解训练参数
type FactorizationConfig struct {
	Factors        int     `mapstructure:"factors"`
	Epochs         int     `mapstructure:"epochs"`
	LearningRate   float64 `mapstructure:"learning_rate"`
	Regularization float64 `mapstructure:"regularization"`
	InitMean       float64 `mapstructure:"init_mean"`
	InitStdDev     float64 `mapstructure:"init_std_dev"`
	TestSize       float64 `mapstructure:"test_size"` // 0表示全部数据参与训练
	Seed           int64   `mapstructure:"seed"`
	RatingMin      float64 `mapstructure:"rating_min"`
	RatingMax      float64 `mapstructure:"rating_max"`
}

// Config 推荐引擎配置，调用时显式传入
type Config struct {
	TopN          int     `mapstructure:"top_n"`
	ContentWeight float64 `mapstructure:"content_weight"`

	SimilarityWeight float64 `mapstructure:"similarity_weight"`
	LocationWeight   float64 `mapstructure:"location_weight"`
	LocationMatch    float64 `mapstructure:"location_match"`
	LocationMiss     float64 `mapstructure:"location_miss"`
	Epsilon          float64 `mapstructure:"epsilon"`

	Profile       ProfileWeights      `mapstructure:"profile"`
	Ratings       SyntheticRatings    `mapstructure:"ratings"`
	Factorization FactorizationConfig `mapstructure:"factorization"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		TopN:             10,
		ContentWeight:    0.6,
		SimilarityWeight: 0.8,
		LocationWeight:   0.2,
		LocationMatch:    1.0,
		LocationMiss:     0.5,
		Epsilon:          1e-8,
		Profile: ProfileWeights{
			Wishlist: 2.0,
			Review:   1.5,
			Default:  1.0,
		},
		Ratings: SyntheticRatings{
			Wishlist:       5.0,
			View:           3.0,
			ViewingRequest: 4.0,
			Neutral:        3.0,
		},
		Factorization: FactorizationConfig{
			Factors:        100,
			Epochs:         20,
			LearningRate:   0.005,
			Regularization: 0.02,
			InitMean:       0,
			InitStdDev:     0.1,
			TestSize:       0.2,
			Seed:           42,
			RatingMin:      1,
			RatingMax:      5,
		},
	}
}

// Validate 检查配置是否可用
func (c Config) Validate() error {
	if c.TopN <= 0 {
		return ErrInvalidTopN
	}
	if c.ContentWeight < 0 || c.ContentWeight > 1 {
		return ErrInvalidContentWeight
	}
	if c.Factorization.Factors <= 0 || c.Factorization.Epochs < 0 {
		return fmt.Errorf("invalid factorization shape: factors=%d epochs=%d",
			c.Factorization.Factors, c.Factorization.Epochs)
	}
	if c.Factorization.TestSize < 0 || c.Factorization.TestSize >= 1 {
		return fmt.Errorf("invalid test size: %v", c.Factorization.TestSize)
	}
	if c.Factorization.RatingMin >= c.Factorization.RatingMax {
		return fmt.Errorf("invalid rating scale: [%v, %v]",
			c.Factorization.RatingMin, c.Factorization.RatingMax)
	}
	return nil
}

// Options 单次推荐调用的参数，零值使用配置中的默认值
type Options struct {
	TopN          int
	ContentWeight *float64
}

func (c Config) resolve(opts Options) (int, float64, error) {
	topN := c.TopN
	if opts.TopN != 0 {
		topN = opts.TopN
	}
	if topN <= 0 {
		return 0, 0, ErrInvalidTopN
	}

	weight := c.ContentWeight
	if opts.ContentWeight != nil {
		weight = *opts.ContentWeight
	}
	if weight < 0 || weight > 1 {
		return 0, 0, ErrInvalidContentWeight
	}
	return topN, weight, nil
}
