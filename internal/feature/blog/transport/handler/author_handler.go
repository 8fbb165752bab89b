package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// AuthorUsecase defines the usecase for author management operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthorUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Author, error)
	Update(ctx context.Context, id, ownerID uint, patch usecase.AuthorPatch) (*entity.Author, error)
	Delete(ctx context.Context, id, ownerID uint) error
}

// AuthorHandler handles HTTP requests for the /authors/ resource. Authors
// are primarily created through post nesting, so the resource only exposes
// list, partial update and delete.
type AuthorHandler struct {
	authors AuthorUsecase
}

// NewAuthorHandler creates a new AuthorHandler instance.
func NewAuthorHandler(authors AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// List handles GET /authors/ and returns the caller's authors, name
// descending.
func (h *AuthorHandler) List(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	authors, err := h.authors.List(c.Request.Context(), owner)
	if err != nil {
		slog.Error("author list failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	res := make([]api.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthorResponse(a))
	}
	c.JSON(http.StatusOK, res)
}

// PartialUpdate handles PATCH /authors/:id/ with merge semantics.
func (h *AuthorHandler) PartialUpdate(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	var req api.AuthorPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("author patch validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	author, err := h.authors.Update(c.Request.Context(), id, owner, usecase.AuthorPatch{
		Name:           req.Name,
		Link:           req.Link,
		ProfilePicture: req.ProfilePicture,
		Description:    req.Description,
	})
	if err != nil {
		h.renderError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, toAuthorResponse(*author))
}

// Delete handles DELETE /authors/:id/.
func (h *AuthorHandler) Delete(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	if err := h.authors.Delete(c.Request.Context(), id, owner); err != nil {
		h.renderError(c, err, owner)
		return
	}
	slog.Info("author deleted", "author_id", id, "user_id", owner)
	c.Status(http.StatusNoContent)
}

// renderError maps usecase errors to HTTP responses.
func (h *AuthorHandler) renderError(c *gin.Context, err error, owner uint) {
	if errors.Is(err, usecase.ErrAuthorNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	slog.Error("author operation failed", "error", err, "user_id", owner)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
