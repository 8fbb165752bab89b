package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"blog_backend/internal/app/router"
	authadapters "blog_backend/internal/feature/auth/adapters"
	authhandler "blog_backend/internal/feature/auth/transport/handler"
	authusecase "blog_backend/internal/feature/auth/usecase"
	blogadapters "blog_backend/internal/feature/blog/adapters"
	bloghandler "blog_backend/internal/feature/blog/transport/handler"
	blogusecase "blog_backend/internal/feature/blog/usecase"
	infradb "blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	infraredis "blog_backend/internal/platform/redis"
	"blog_backend/internal/platform/token"
)

const tokenTTL = 24 * time.Hour

func main() {
	// db
	db := infradb.OpenDB()

	// Redis (token revocation); the API keeps working without it,
	// logout then degrades to letting tokens age out.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without token revocation.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	var blacklist *token.Blacklist
	var revoker authusecase.TokenRevoker
	var mwBlacklist jwtmw.Blacklist
	if rdb != nil {
		blacklist = token.NewBlacklist(rdb, "revoked", tokenTTL)
		revoker = blacklist
		mwBlacklist = blacklist
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	postRepo := blogadapters.NewPostRepository(db)
	authorRepo := blogadapters.NewAuthorRepository(db)

	// Usecase
	issuer := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, revoker)
	postUC := blogusecase.NewPostUsecase(postRepo)
	authorUC := blogusecase.NewAuthorUsecase(authorRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	postH := bloghandler.NewPostHandler(postUC)
	authorH := bloghandler.NewAuthorHandler(authorUC)

	// Router
	router := router.NewRouter(authH, postH, authorH, mwBlacklist)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
