// Package handler provides the HTTP handlers for the blog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// PostUsecase defines the usecase for post management operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PostUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Post, error)
	Get(ctx context.Context, id, ownerID uint) (*entity.Post, error)
	Create(ctx context.Context, ownerID uint, in usecase.PostInput, authors []usecase.AuthorInput) (*entity.Post, error)
	Update(ctx context.Context, id, ownerID uint, patch usecase.PostPatch, authors *[]usecase.AuthorInput) (*entity.Post, error)
	Delete(ctx context.Context, id, ownerID uint) error
}

// PostHandler handles HTTP requests for the /posts/ resource. Every route
// sits behind AuthRequired; all operations are scoped to the caller.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// callerID extracts the authenticated user ID set by the JWT middleware.
// The second return is false when the request somehow bypassed it.
func callerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func toAuthorResponse(a entity.Author) api.AuthorResponse {
	return api.AuthorResponse{
		ID:             a.ID,
		Name:           a.Name,
		Link:           a.Link,
		ProfilePicture: a.ProfilePicture,
		Description:    a.Description,
	}
}

func toPostResponse(p *entity.Post) api.PostResponse {
	authors := make([]api.AuthorResponse, 0, len(p.Authors))
	for _, a := range p.Authors {
		authors = append(authors, toAuthorResponse(a))
	}
	return api.PostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		ImgDescription: p.ImgDescription,
		Slug:           p.Slug,
		Authors:        authors,
	}
}

func toAuthorInputs(payloads []api.AuthorPayload) []usecase.AuthorInput {
	inputs := make([]usecase.AuthorInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, usecase.AuthorInput{
			Name:           p.Name,
			Link:           p.Link,
			ProfilePicture: p.ProfilePicture,
			Description:    p.Description,
		})
	}
	return inputs
}

// List handles GET /posts/ and returns the caller's posts, newest first.
func (h *PostHandler) List(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	posts, err := h.posts.List(c.Request.Context(), owner)
	if err != nil {
		slog.Error("post list failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	res := make([]api.PostResponse, 0, len(posts))
	for i := range posts {
		res = append(res, toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Create handles POST /posts/. The owner always comes from the
// authenticated caller; payload-supplied owner fields are ignored by
// construction since the DTO cannot carry them.
func (h *PostHandler) Create(c *gin.Context) {
	owner, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post create validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	var authors []usecase.AuthorInput
	if req.Authors != nil {
		authors = toAuthorInputs(*req.Authors)
	}
	post, err := h.posts.Create(c.Request.Context(), owner, usecase.PostInput{
		Title:          req.Title,
		Description:    req.Description,
		ImgDescription: req.ImgDescription,
		Slug:           req.Slug,
	}, authors)
	if err != nil {
		slog.Error("post create failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("post created", "post_id", post.ID, "user_id", owner)
	c.JSON(http.StatusCreated, toPostResponse(post))
}

// Get handles GET /posts/:id/. A post owned by someone else yields the
// same 404 as a missing one.
func (h *PostHandler) Get(c *gin.Context) {
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
	post, err := h.posts.Get(c.Request.Context(), id, owner)
	if err != nil {
		h.renderError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /posts/:id/: a full replace of the mutable fields.
// Omitting authors keeps the existing author set.
func (h *PostHandler) Update(c *gin.Context) {
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
	var req api.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post update validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	patch := usecase.PostPatch{
		Title:          &req.Title,
		Description:    &req.Description,
		ImgDescription: &req.ImgDescription,
		Slug:           &req.Slug,
	}
	post, err := h.posts.Update(c.Request.Context(), id, owner, patch, authorInputsPtr(req.Authors))
	if err != nil {
		h.renderError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// PartialUpdate handles PATCH /posts/:id/: merge semantics, only supplied
// fields change. An empty authors list clears the author set; an absent
// one keeps it.
func (h *PostHandler) PartialUpdate(c *gin.Context) {
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
	var req api.PostPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post patch validation failed", "error", err, "user_id", owner)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	patch := usecase.PostPatch{
		Title:          req.Title,
		Description:    req.Description,
		ImgDescription: req.ImgDescription,
		Slug:           req.Slug,
	}
	post, err := h.posts.Update(c.Request.Context(), id, owner, patch, authorInputsPtr(req.Authors))
	if err != nil {
		h.renderError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id/.
func (h *PostHandler) Delete(c *gin.Context) {
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
	if err := h.posts.Delete(c.Request.Context(), id, owner); err != nil {
		h.renderError(c, err, owner)
		return
	}
	slog.Info("post deleted", "post_id", id, "user_id", owner)
	c.Status(http.StatusNoContent)
}

// authorInputsPtr maps an optional payload author list onto the usecase
// type, keeping the nil (untouched) vs empty (clear) distinction intact.
func authorInputsPtr(payloads *[]api.AuthorPayload) *[]usecase.AuthorInput {
	if payloads == nil {
		return nil
	}
	inputs := toAuthorInputs(*payloads)
	return &inputs
}

// renderError maps usecase errors to HTTP responses.
func (h *PostHandler) renderError(c *gin.Context, err error, owner uint) {
	if errors.Is(err, usecase.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	slog.Error("post operation failed", "error", err, "user_id", owner)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
