package http

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/batuhansemiz/portfolio-backend/internal/auth"
	authmw "github.com/batuhansemiz/portfolio-backend/internal/auth/middleware"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/domain"
	"github.com/batuhansemiz/portfolio-backend/internal/projects/repository"
)

type Handler struct {
	store repository.Store
}

// Register mounts the public project API on rg. Reads are open; writes are
// gated by bearer-token verification.
func Register(rg *gin.RouterGroup, store repository.Store, verifier auth.TokenVerifier) {
	h := &Handler{store: store}

	rg.GET("", h.list)
	rg.GET("/:id", h.get)

	protected := rg.Group("", authmw.RequireBearerToken(verifier))
	protected.POST("", h.create)
	protected.PUT("/:id", h.update)
	protected.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	if !h.ensureStore(c) {
		return
	}

	items, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[api] error getting projects: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	if !h.ensureStore(c) {
		return
	}

	p, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		log.Printf("[api] error getting project: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	if !h.ensureStore(c) {
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Description == "" {
		c.String(http.StatusBadRequest, "Missing required fields")
		return
	}

	p := &domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		RepoURL:      req.RepoURL,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	id, err := h.store.Create(c.Request.Context(), p)
	if err != nil {
		log.Printf("[api] error adding project: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	p.ID = id
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	if !h.ensureStore(c) {
		return
	}

	id := c.Param("id")

	// An empty body is a valid no-field update; the existence check must
	// still run so an unknown id answers 404.
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := repository.Update{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		RepoURL:      req.RepoURL,
	}

	err := h.store.Update(c.Request.Context(), id, upd)
	if errors.Is(err, domain.ErrNotFound) {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		log.Printf("[api] error updating project: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := gin.H{"id": id}
	if req.Title != nil {
		resp["title"] = *req.Title
	}
	if req.Description != nil {
		resp["description"] = *req.Description
	}
	if req.Technologies != nil {
		resp["technologies"] = *req.Technologies
	}
	if req.ImageURL != nil {
		resp["imageUrl"] = *req.ImageURL
	}
	if req.ProjectURL != nil {
		resp["projectUrl"] = *req.ProjectURL
	}
	if req.RepoURL != nil {
		resp["repoUrl"] = *req.RepoURL
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) delete(c *gin.Context) {
	if !h.ensureStore(c) {
		return
	}

	id := c.Param("id")

	err := h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.String(http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		log.Printf("[api] error deleting project: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Project with ID: %s deleted successfully.", id))
}

// ensureStore guards every route against a missing store handle, so a
// misconfigured deployment fails with a clear message instead of a panic.
func (h *Handler) ensureStore(c *gin.Context) bool {
	if h.store == nil {
		log.Printf("[api] store check failed for route: %s", c.FullPath())
		c.String(http.StatusInternalServerError, "Server error: database connection unavailable")
		return false
	}
	return true
}
