package main

import (
	"log"
	"net/http"

	"movielist/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"movielist/internal/auth"
	"movielist/internal/config"
	"movielist/internal/db"
	"movielist/internal/handler"
	"movielist/internal/model"
	"movielist/internal/repository"
	"movielist/internal/router"
	"movielist/internal/service"
)

// @title Movie Catalog API
// @version 1.0
// @description Movie catalog API with filtered search, instant search and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Movie{}, &model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	movieRepo := repository.NewMovieRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	movieService := service.NewMovieService(movieRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	// Initialize handlers
	movieHandler := handler.NewMovieHandler(movieService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(e, jwtService, movieHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
