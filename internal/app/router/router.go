package router

import (
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	"blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, posts *bloghandler.PostHandler,
	authors *bloghandler.AuthorHandler, blacklist jwtmw.Blacklist) *gin.Engine {
	r := gin.Default()

	// No authentication required
	// Liveness probe
	r.GET("/healthz", handler.Health)
	// New user registration
	r.POST("/signup", authHandler.Signup)
	// Login (issues a JWT)
	r.POST("/login", authHandler.Login)

	// Routes requiring authentication: every entity operation is scoped
	// to the caller resolved by the JWT middleware.
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(blacklist))
	{
		auth.POST("/logout", authHandler.Logout)

		auth.GET("/posts/", posts.List)
		auth.POST("/posts/", posts.Create)
		auth.GET("/posts/:id/", posts.Get)
		auth.PUT("/posts/:id/", posts.Update)
		auth.PATCH("/posts/:id/", posts.PartialUpdate)
		auth.DELETE("/posts/:id/", posts.Delete)

		auth.GET("/authors/", authors.List)
		auth.PATCH("/authors/:id/", authors.PartialUpdate)
		auth.DELETE("/authors/:id/", authors.Delete)
	}

	return r
}
