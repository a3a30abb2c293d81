package middleware

import (
	"net/http"
	"strings"

	"Tribune/pkg/context"
	"Tribune/pkg/jwt"
	"Tribune/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "请先登录")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuth 可选登录：带合法令牌就识别身份，否则按游客放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseAuthHeader(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
			c.Set(context.CtxUsername, claims.Username)
		}
		c.Next()
	}
}

func parseAuthHeader(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
