package main

import (
	"context"
	"flag"
	"log"
	"time"

	authadapters "blog_backend/internal/feature/auth/adapters"
	authusecase "blog_backend/internal/feature/auth/usecase"
	infradb "blog_backend/internal/platform/db"
)

func main() {
	email := flag.String("email", "", "email address of the superuser")
	password := flag.String("password", "", "password of the superuser")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	db := infradb.OpenDB()
	userRepo := authadapters.NewUserRepository(db)
	uc := authusecase.NewAuthUsecase(userRepo, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := uc.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		log.Fatal("failed to create superuser: ", err)
	}
	log.Printf("superuser created: id=%d email=%s", user.ID, user.Email)
}
