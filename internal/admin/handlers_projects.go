package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/batuhansemiz/portfolio-backend/internal/projects/domain"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
	"github.com/batuhansemiz/portfolio-backend/internal/session"
)

const (
	msgFieldsRequired = "Title and description are required."
	msgServerError    = "Something went wrong. Please try again."
	msgLoadError      = "Projects could not be loaded."
)

// projectForm mirrors the project form inputs. Technologies stays a single
// comma-separated string here and is only split on successful submission,
// so nothing the operator typed is lost on a validation error.
type projectForm struct {
	ID           string
	Title        string
	Description  string
	Technologies string
	ImageURL     string
	ProjectURL   string
	RepoURL      string
}

func formFromRequest(c *gin.Context) projectForm {
	return projectForm{
		Title:        strings.TrimSpace(c.PostForm("title")),
		Description:  strings.TrimSpace(c.PostForm("description")),
		Technologies: c.PostForm("technologies"),
		ImageURL:     strings.TrimSpace(c.PostForm("imageUrl")),
		ProjectURL:   strings.TrimSpace(c.PostForm("projectUrl")),
		RepoURL:      strings.TrimSpace(c.PostForm("repoUrl")),
	}
}

func formFromProject(p *domain.Project) projectForm {
	return projectForm{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.TechnologiesCSV(),
		ImageURL:     p.ImageURL,
		ProjectURL:   p.ProjectURL,
		RepoURL:      p.RepoURL,
	}
}

func (h *Handler) dashboard(c *gin.Context) {
	sess := session.Current(c)

	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[admin] error loading dashboard projects: %v", err)
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"projects": []domain.Project{},
			"user":     sess.User,
			"error":    msgLoadError,
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"projects": items,
		"user":     sess.User,
		"error":    nil,
	})
}

func (h *Handler) newForm(c *gin.Context) {
	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"project": projectForm{},
		"editing": false,
		"error":   nil,
	})
}

func (h *Handler) createProject(c *gin.Context) {
	form := formFromRequest(c)

	if form.Title == "" || form.Description == "" {
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"project": form,
			"editing": false,
			"error":   msgFieldsRequired,
		})
		return
	}

	p := &domain.Project{
		Title:        form.Title,
		Description:  form.Description,
		Technologies: domain.SplitTechnologies(form.Technologies),
		ImageURL:     form.ImageURL,
		ProjectURL:   form.ProjectURL,
		RepoURL:      form.RepoURL,
	}

	if _, err := h.store.Create(c.Request.Context(), p); err != nil {
		log.Printf("[admin] error creating project: %v", err)
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"project": form,
			"editing": false,
			"error":   msgServerError,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) editForm(c *gin.Context) {
	id := c.Param("id")

	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		// Stale links land back on the dashboard without an error page.
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[admin] error loading project %s: %v", id, err)
		}
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"project": formFromProject(p),
		"editing": true,
		"error":   nil,
	})
}

func (h *Handler) updateProject(c *gin.Context) {
	id := c.Param("id")
	form := formFromRequest(c)
	form.ID = id

	if form.Title == "" || form.Description == "" {
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"project": form,
			"editing": true,
			"error":   msgFieldsRequired,
		})
		return
	}

	techs := domain.SplitTechnologies(form.Technologies)
	upd := repository.Update{
		Title:        &form.Title,
		Description:  &form.Description,
		Technologies: &techs,
		ImageURL:     &form.ImageURL,
		ProjectURL:   &form.ProjectURL,
		RepoURL:      &form.RepoURL,
	}

	err := h.store.Update(c.Request.Context(), id, upd)
	if errors.Is(err, domain.ErrNotFound) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	if err != nil {
		log.Printf("[admin] error updating project %s: %v", id, err)
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"project": form,
			"editing": true,
			"error":   msgServerError,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Param("id")

	// Delete is best-effort from the panel's point of view: failures are
	// logged, the operator always lands back on the dashboard.
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[admin] error deleting project %s: %v", id, err)
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}
