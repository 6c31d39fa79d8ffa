package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

const (
	ctxUserID      = "user_id"
	ctxUsername    = "username"
	ctxActiveGymID = "active_gym_id"
)

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, jwtSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		if claims.ActiveGymID != nil {
			c.Set(ctxActiveGymID, *claims.ActiveGymID)
		}

		c.Next()
	}
}

// RequireGym guards tenant-scoped routes. A valid token without an active-gym
// claim means the user has not selected or created a gym yet; the client uses
// the no_active_gym code to redirect to gym selection.
func RequireGym() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ctxActiveGymID); !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "no active gym selected",
				"code":  "no_active_gym",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsername)
	if !exists {
		return "", false
	}

	name, ok := v.(string)
	return name, ok
}

// GetScope mints the tenant scope for the request. Handlers pass it down to
// repositories; it only exists when the token carried an active-gym claim.
func GetScope(c *gin.Context) (tenant.Scope, bool) {
	v, exists := c.Get(ctxActiveGymID)
	if !exists {
		return tenant.Scope{}, false
	}

	gymID, ok := v.(int)
	if !ok {
		return tenant.Scope{}, false
	}

	return tenant.NewScope(gymID), true
}
