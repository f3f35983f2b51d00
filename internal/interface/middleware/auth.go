package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/job-portal-api/internal/domain/entity"
	"github.com/oksasatya/job-portal-api/pkg/helpers"
	"github.com/oksasatya/job-portal-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

func unauthorized(c *gin.Context, msg string) {
	response.Error[any](c, http.StatusUnauthorized, msg, response.ErrorBody{Code: "UNAUTHENTICATED"})
	c.Abort()
}

// bearerToken reads "Authorization: Bearer <token>", falling back to the access cookie.
func bearerToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if token, err := c.Cookie(helpers.AccessCookie); err == nil {
		return token
	}
	return ""
}

// Auth validates the access token. When rdb is set the token's session id
// must match the live session in Redis, so logout and a newer login revoke it.
// It sets userID and userRole in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			unauthorized(c, "invalid or expired access token")
			return
		}
		role, err := entity.ParseRole(claims.Role)
		if err != nil {
			unauthorized(c, "invalid access token")
			return
		}

		if rdb != nil {
			sid, err := rdb.HGet(c.Request.Context(), helpers.SessionKey(claims.UserID), "sid").Result()
			if err != nil || sid == "" || sid != claims.SessionID {
				unauthorized(c, "session not found")
				return
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxUserRoleKey)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Error[any](c, http.StatusForbidden, "your role cannot perform this action", response.ErrorBody{Code: "FORBIDDEN"})
		c.Abort()
	}
}
