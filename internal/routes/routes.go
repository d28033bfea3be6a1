// Package routes wires the handler methods to their paths. Each sub-API
// registers its own group; auth-protected endpoints share one middleware
// instance so every route checks tokens the same way.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type Handlers struct {
	Books        *handlers.BookHandler
	Clowns       *handlers.ClownHandler
	Transactions *handlers.TransactionHandler
	Categories   *handlers.CategoryHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Tweets       *handlers.TweetHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers, authenticate gin.HandlerFunc) {
	api := router.Group("/")

	bookRoutes := NewBookRoutes(h.Books)
	bookRoutes.RegisterRoutes(api)

	clownRoutes := NewClownRoutes(h.Clowns)
	clownRoutes.RegisterRoutes(api)

	financeRoutes := NewFinanceRoutes(h.Transactions, h.Categories, h.Users)
	financeRoutes.RegisterRoutes(api, authenticate)

	authRoutes := NewAuthRoutes(h.Auth)
	authRoutes.RegisterRoutes(api, authenticate)

	twitterRoutes := NewTwitterRoutes(h.Tweets, h.Users)
	twitterRoutes.RegisterRoutes(api, authenticate)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
