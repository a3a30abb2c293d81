package middleware

import (
	"Tribune/dao/cache"
	pkgctx "Tribune/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const guestCookie = "guest_id"

// 游客标识 cookie 有效期（秒）
const guestCookieMaxAge = 30 * 24 * 3600

// Presence 刷新在线状态
// 登录用户记用户ID，游客发一个 uuid cookie 记游客标识
func Presence(online *cache.OnlineStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := pkgctx.GetUserID(c); uid > 0 {
			online.TouchUser(c.Request.Context(), uid)
			c.Next()
			return
		}

		guestID, err := c.Cookie(guestCookie)
		if err != nil || guestID == "" {
			guestID = uuid.NewString()
			c.SetCookie(guestCookie, guestID, guestCookieMaxAge, "/", "", false, true)
		}
		c.Set(pkgctx.CtxGuestID, guestID)
		online.TouchGuest(c.Request.Context(), guestID)

		c.Next()
	}
}
