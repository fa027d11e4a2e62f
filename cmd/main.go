package main

import (
	"context"
	"log"

	"github.com/PrincyBhingradiya/auth-posts-api/config"
	"github.com/PrincyBhingradiya/auth-posts-api/db"
	authhandler "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/handler"
	authrepo "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/repository/postgres"
	authservice "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/service"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/mail"
	posthandler "github.com/PrincyBhingradiya/auth-posts-api/internal/post/handler"
	postrepo "github.com/PrincyBhingradiya/auth-posts-api/internal/post/repository/postgres"
	postservice "github.com/PrincyBhingradiya/auth-posts-api/internal/post/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if !cfg.IsEmailConfigured() {
		log.Println("warning: SMTP credentials not configured, password reset emails will fail")
	}

	userRepo := authrepo.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMinutes)
	mailer := mail.NewSMTPMailer(cfg)
	userService := authservice.NewUserService(userRepo, tokenService, mailer, cfg)
	authHandler := authhandler.NewAuthHandler(userService)

	postRepo := postrepo.NewPostgresRepository(pool)
	postService := postservice.NewPostService(postRepo)
	postHandler := posthandler.NewPostHandler(postService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	authRequired := authhandler.AuthRequired(tokenService, userRepo)
	authhandler.RegisterRoutes(app, authHandler, authRequired, cfg)
	posthandler.RegisterRoutes(app, postHandler, authRequired)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
