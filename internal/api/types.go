// Package api defines the request and response types shared by the HTTP handlers.
package api

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued credential token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthorPayload is a nested author value inside post requests. Authors are
// matched by value: an identical payload reuses the caller's existing row.
type AuthorPayload struct {
	Name           string `json:"name" binding:"required"`
	Link           string `json:"link" binding:"omitempty,url"`
	ProfilePicture string `json:"profile_picture" binding:"omitempty,url"`
	Description    string `json:"description"`
}

// AuthorPatchRequest is the request body for PATCH /authors/:id/.
// Absent fields are left unchanged.
type AuthorPatchRequest struct {
	Name           *string `json:"name"`
	Link           *string `json:"link" binding:"omitempty,url"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url"`
	Description    *string `json:"description"`
}

// AuthorResponse is the serialized form of an author.
type AuthorResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Link           string `json:"link"`
	ProfilePicture string `json:"profile_picture"`
	Description    string `json:"description"`
}

// PostRequest is the request body for POST /posts/ and PUT /posts/:id/.
// Authors is optional; when present on an update the whole author set is
// replaced, when absent the existing set is kept.
type PostRequest struct {
	Title          string           `json:"title" binding:"required"`
	Description    string           `json:"description" binding:"required"`
	ImgDescription string           `json:"img_description" binding:"required,url"`
	Slug           string           `json:"slug" binding:"required"`
	Authors        *[]AuthorPayload `json:"authors" binding:"omitempty,dive"`
}

// PostPatchRequest is the request body for PATCH /posts/:id/.
// Absent fields are left unchanged; an empty Authors list clears the
// author set while a nil one keeps it.
type PostPatchRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	ImgDescription *string          `json:"img_description" binding:"omitempty,url"`
	Slug           *string          `json:"slug"`
	Authors        *[]AuthorPayload `json:"authors" binding:"omitempty,dive"`
}

// PostResponse is the serialized form of a post.
type PostResponse struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	ImgDescription string           `json:"img_description"`
	Slug           string           `json:"slug"`
	Authors        []AuthorResponse `json:"authors"`
}
