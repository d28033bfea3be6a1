package routes

import (
	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	router.POST("/login", r.handler.Login)
	router.GET("/auth", authenticate, r.handler.CheckAuth)

	// Logout is also reachable via GET for plain-link frontends.
	router.POST("/logout", authenticate, r.handler.Logout)
	router.GET("/logout", authenticate, r.handler.Logout)
}
