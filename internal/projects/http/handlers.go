package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aipage-top/aipage-backend/internal/projects/domain"
	"github.com/aipage-top/aipage-backend/internal/projects/repository"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), repository.CreateInput{
		Title:       req.Title,
		HTMLContent: req.HTMLContent,
		IsPublic:    req.IsPublic,
		UserID:      req.UserID,
	})
	if err != nil {
		writeError(c, "failed to create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "project": p})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "failed to get project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), repository.UpdateInput{
		Title:       req.Title,
		HTMLContent: req.HTMLContent,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeError(c, "failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "failed to delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
}

func (h *Handler) list(c *gin.Context) {
	h.listProjects(c, false)
}

func (h *Handler) listPublic(c *gin.Context) {
	h.listProjects(c, true)
}

func (h *Handler) listProjects(c *gin.Context, publicOnly bool) {
	items, err := h.svc.List(c.Request.Context(), publicOnly)
	if err != nil {
		writeError(c, "failed to list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items, "count": len(items)})
}

func (h *Handler) preview(c *gin.Context) {
	html, err := h.svc.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "failed to load preview", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// writeError maps the domain error taxonomy onto the JSON error envelope.
// Validation errors are user-correctable (400), missing ids are 404, and
// everything else is an unexpected store failure (500 with detail).
func writeError(c *gin.Context, msg string, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
	}
}
