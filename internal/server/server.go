package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/config"
	"rest-playground/internal/database"
	"rest-playground/internal/handlers"
	"rest-playground/internal/logger"
	"rest-playground/internal/middlewares"
	"rest-playground/internal/repositories"
	"rest-playground/internal/routes"
	"rest-playground/internal/services"
)

type Server struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// New connects to the database, runs the schema migrations and wires
// repositories, services, handlers and routes into an *http.Server.
func New(ctx context.Context) (*http.Server, *Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New("api")

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	secret := []byte(cfg.TokenSecret)

	bookRepo := repositories.NewBookRepository(pool)
	clownRepo := repositories.NewClownRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	transactionRepo := repositories.NewTransactionRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	tweetRepo := repositories.NewTweetRepository(pool)
	tokenRepo := repositories.NewTokenRepository(pool)

	transactionService := services.NewTransactionService(transactionRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	authService := services.NewAuthService(userRepo, tokenRepo, secret)
	userService := services.NewUserService(userRepo, tweetRepo, transactionRepo, tokenRepo)
	tweetService := services.NewTweetService(tweetRepo)

	h := routes.Handlers{
		Books:        handlers.NewBookHandler(bookRepo),
		Clowns:       handlers.NewClownHandler(clownRepo),
		Transactions: handlers.NewTransactionHandler(transactionService),
		Categories:   handlers.NewCategoryHandler(categoryService, transactionService),
		Auth:         handlers.NewAuthHandler(authService, userService),
		Users:        handlers.NewUserHandler(userService),
		Tweets:       handlers.NewTweetHandler(tweetService),
	}

	authenticate := middlewares.Authenticate(tokenRepo, userRepo, secret)

	router := gin.New()
	router.Use(middlewares.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	routes.RegisterRoutes(router, h, authenticate)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return httpServer, &Server{pool: pool, log: log}, nil
}

// Close releases the database pool.
func (s *Server) Close() {
	s.pool.Close()
}

// Log exposes the server logger for the main goroutine.
func (s *Server) Log() *logger.Logger {
	return s.log
}
