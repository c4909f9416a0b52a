package bootstrap

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/batuhansemiz/portfolio-backend/internal/admin"
	httpapi "github.com/batuhansemiz/portfolio-backend/internal/api/http"
	"github.com/batuhansemiz/portfolio-backend/internal/api/http/middleware"
	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	projectshttp "github.com/batuhansemiz/portfolio-backend/internal/projects/http"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
	"github.com/batuhansemiz/portfolio-backend/internal/session"
	"github.com/batuhansemiz/portfolio-backend/web"
)

// RouterDeps carries every handle the router needs, produced once at
// startup and passed by parameter.
type RouterDeps struct {
	ServiceName string
	Version     string
	Origins     []string

	Store    repository.Store
	Verifier auth.TokenVerifier
	Sessions *session.Manager

	AdminEmail        string
	AdminPasswordHash string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/admin/*.html")))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/login")
	})

	projectsGroup := r.Group("/projects")
	projectshttp.Register(projectsGroup, dep.Store, dep.Verifier)

	adminGroup := r.Group("/admin")
	adminGroup.Use(dep.Sessions.Middleware())
	admin.Register(adminGroup, dep.Store, dep.Sessions, dep.AdminEmail, dep.AdminPasswordHash)

	return r
}
