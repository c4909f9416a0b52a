package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
	"github.com/batuhansemiz/portfolio-backend/internal/session"
)

// Uniform invalid-credentials message: the same text for unknown email,
// wrong password, and hash-verification errors, so callers cannot
// enumerate accounts.
const (
	msgInvalidCredentials = "Invalid email or password."
	msgConfigError        = "Server configuration error."
	msgSessionError       = "Could not start session."
)

// Handler serves the session-authenticated admin panel.
type Handler struct {
	store    repository.Store
	sessions *session.Manager

	adminEmail        string
	adminPasswordHash string
}

// Register mounts the admin panel on rg (expected to be the /admin group).
// Login and logout are open; everything else sits behind RequireAdminLogin.
func Register(rg *gin.RouterGroup, store repository.Store, sessions *session.Manager, adminEmail, adminPasswordHash string) {
	h := &Handler{
		store:             store,
		sessions:          sessions,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}

	limiter := newLoginLimiter(10)

	rg.GET("/login", h.loginForm)
	rg.POST("/login", limiter.middleware(), h.login)
	rg.GET("/logout", h.logout)

	guarded := rg.Group("", RequireAdminLogin())
	guarded.GET("/dashboard", h.dashboard)
	guarded.GET("/projects/new", h.newForm)
	guarded.POST("/projects/new", h.createProject)
	guarded.GET("/projects/edit/:id", h.editForm)
	guarded.POST("/projects/edit/:id", h.updateProject)
	guarded.POST("/projects/delete/:id", h.deleteProject)
}

func (h *Handler) loginForm(c *gin.Context) {
	if session.Current(c).IsAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if h.adminEmail == "" || h.adminPasswordHash == "" {
		log.Printf("[admin] ADMIN_EMAIL or ADMIN_PASSWORD_HASH is not configured")
		c.HTML(http.StatusOK, "login.html", gin.H{"error": msgConfigError})
		return
	}

	if email == h.adminEmail {
		ok, err := auth.VerifyPassword(h.adminPasswordHash, password)
		if err != nil {
			log.Printf("[admin] password verification error for %s: %v", email, err)
			c.HTML(http.StatusOK, "login.html", gin.H{"error": msgInvalidCredentials})
			return
		}
		if ok {
			sess := session.Current(c)
			sess.IsAdmin = true
			sess.User = session.User{Email: h.adminEmail}

			if err := h.sessions.Save(c, sess); err != nil {
				log.Printf("[admin] session save failed for %s: %v", email, err)
				c.HTML(http.StatusOK, "login.html", gin.H{"error": msgSessionError})
				return
			}

			log.Printf("[admin] login successful: %s", email)
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
	}

	log.Printf("[admin] login failed: %s", email)
	c.HTML(http.StatusOK, "login.html", gin.H{"error": msgInvalidCredentials})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		log.Printf("[admin] session destroy failed: %v", err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}
