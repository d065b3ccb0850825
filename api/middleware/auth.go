package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rentalhub/rental-recommender/database"
	"github.com/rentalhub/rental-recommender/models"
	"github.com/rentalhub/rental-recommender/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserFinder 按ID查找用户
type UserFinder interface {
	FindUser(ctx context.Context, userID uint) (*models.User, error)
}

// Auth 验证JWT令牌中间件
func Auth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.FindUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, database.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User is inactive"})
			return
		}

		// 将用户ID和用户信息存储在上下文中
		c.Set("userID", user.ID)
		c.Set("user", *user)

		c.Next()
	}
}
