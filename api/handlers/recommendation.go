package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rentalhub/rental-recommender/database"
	"github.com/rentalhub/rental-recommender/models"
	"github.com/rentalhub/rental-recommender/pkg/recommender"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationStore 推荐接口依赖的数据访问
type RecommendationStore interface {
	FindUser(ctx context.Context, userID uint) (*models.User, error)
	Load(ctx context.Context) (*recommender.Snapshot, error)
	PropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error)
	Ping(ctx context.Context) error
}

// RecommendationHandler 推荐处理器
type RecommendationHandler struct {
	store       RecommendationStore
	recommender *recommender.Recommender
	logger      *zap.Logger
}

// NewRecommendationHandler 创建推荐处理器
func NewRecommendationHandler(store RecommendationStore, rec *recommender.Recommender, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		store:       store,
		recommender: rec,
		logger:      logger,
	}
}

// RegisterRoutes 注册路由
func (h *RecommendationHandler) RegisterRoutes(public, authorized *gin.RouterGroup) {
	public.GET("/recommend/hybrid/:userId", h.GetHybridRecommendations)
	authorized.GET("/recommendations", h.GetMyRecommendations)
}

// GetHybridRecommendations 按路径中的用户ID返回混合推荐
func (h *RecommendationHandler) GetHybridRecommendations(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	h.respond(c, uint(userID))
}

// GetMyRecommendations 返回当前登录用户的推荐
func (h *RecommendationHandler) GetMyRecommendations(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	h.respond(c, userID.(uint))
}

// Health 检查数据库是否可用
func (h *RecommendationHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *RecommendationHandler) respond(c *gin.Context, userID uint) {
	var query models.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	start := time.Now()

	if _, err := h.store.FindUser(ctx, userID); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.fail(c, "user", userID, err)
		return
	}

	snap, err := h.store.Load(ctx)
	if err != nil {
		h.fail(c, "snapshot", userID, err)
		return
	}

	rec, err := h.recommender.RecommendDetailed(ctx, snap, userID, recommender.Options{
		TopN:          query.TopN,
		ContentWeight: query.ContentWeight,
	})
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidTopN) || errors.Is(err, recommender.ErrInvalidContentWeight) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, "rank", userID, err)
		return
	}
	recommendationDuration.WithLabelValues(string(rec.Strategy)).Observe(time.Since(start).Seconds())

	h.logger.Debug("Recommendations computed",
		zap.Uint("user_id", userID),
		zap.String("strategy", string(rec.Strategy)),
		zap.Int("count", len(rec.PropertyIDs)),
		zap.Duration("duration", time.Since(start)),
	)

	resp := models.RecommendationResponse{
		PropertyIDs: rec.PropertyIDs,
		Strategy:    string(rec.Strategy),
	}

	if query.Include == "properties" {
		properties, err := h.store.PropertiesByIDs(ctx, rec.PropertyIDs)
		if err != nil {
			h.fail(c, "hydrate", userID, err)
			return
		}
		resp.Properties = make([]models.PropertySummary, 0, len(properties))
		for i := range properties {
			resp.Properties = append(resp.Properties, properties[i].ToSummary())
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RecommendationHandler) fail(c *gin.Context, stage string, userID uint, err error) {
	recommendationFailures.WithLabelValues(stage).Inc()
	h.logger.Error("Failed to compute recommendations",
		zap.String("stage", stage),
		zap.Uint("user_id", userID),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
}
