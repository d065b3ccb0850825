package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalhub/rental-recommender/pkg/recommender"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, recommender.DefaultConfig(), cfg.Recommender)
	assert.NoError(t, cfg.Recommender.Validate())
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
database:
  driver: mysql
  dbname: marketplace
recommender:
  top_n: 5
  content_weight: 0.75
  factorization:
    factors: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	// 环境变量优先于配置文件
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "marketplace", cfg.Database.DBName)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)

	assert.Equal(t, 5, cfg.Recommender.TopN)
	assert.Equal(t, 0.75, cfg.Recommender.ContentWeight)
	assert.Equal(t, 20, cfg.Recommender.Factorization.Factors)
	// 未配置的字段保留默认值
	assert.Equal(t, 20, cfg.Recommender.Factorization.Epochs)
	assert.Equal(t, 2.0, cfg.Recommender.Profile.Wishlist)
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o644))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
