package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batuhansemiz/portfolio-backend/internal/session"
)

// RequireAdminLogin gates the admin surface on the session flag set at
// login. Anything else is sent back to the login page. This is the only
// authorization check the panel has.
func RequireAdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).IsAdmin {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}
