package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navstation/navstation/pkg/helpers"
	"github.com/navstation/navstation/pkg/response"
)

// Context keys set by the guard for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

const (
	MsgTokenMissing = "未提供认证token"
	MsgTokenInvalid = "无效的token"
	MsgTokenExpired = "登录已过期，请重新登录"
)

// Auth is the access guard: it extracts the bearer token, verifies it, and
// attaches the identity to the request context. It rejects and never mutates
// anything else. State machine: no token -> 401, malformed or bad signature
// -> 403, expired -> 401 with a re-login message, valid -> proceed.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Verify(bearerToken(c))
		if err != nil {
			switch {
			case errors.Is(err, helpers.ErrTokenMissing):
				response.AbortFail(c, http.StatusUnauthorized, MsgTokenMissing)
			case errors.Is(err, helpers.ErrTokenExpired):
				response.AbortFail(c, http.StatusUnauthorized, MsgTokenExpired)
			default:
				response.AbortFail(c, http.StatusForbidden, MsgTokenInvalid)
			}
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

// bearerToken pulls the token out of "Authorization: Bearer <token>".
// A missing header or any other scheme counts as no token at all.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the verified identity set by Auth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}
