package gateway

import (
	"net/http"
	"strings"

	"hr-dashboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// SessionGate mengatur akses halaman berdasarkan ada tidaknya cookie
// sesi. Asset dan path API dilewatkan tanpa pengecekan; halaman login
// dengan sesi aktif dilempar ke dashboard; halaman terproteksi tanpa
// sesi dilempar ke login.
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if isPassthroughPath(path) {
			c.Next()
			return
		}

		hasSession := hasSessionCookie(c)

		if path == "/login" {
			if hasSession {
				c.Redirect(http.StatusTemporaryRedirect, "/")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !hasSession {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isPassthroughPath(path string) bool {
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/static/") {
		return true
	}
	// Path dengan titik dianggap asset (favicon.ico, main.css, dst).
	return strings.Contains(path, ".")
}

func hasSessionCookie(c *gin.Context) bool {
	token, err := c.Cookie(auth.SessionCookieName)
	return err == nil && token != ""
}
