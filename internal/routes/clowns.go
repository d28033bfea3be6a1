package routes

import (
	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type ClownRoutes struct {
	handler *handlers.ClownHandler
}

func NewClownRoutes(handler *handlers.ClownHandler) *ClownRoutes {
	return &ClownRoutes{handler: handler}
}

func (r *ClownRoutes) RegisterRoutes(router *gin.RouterGroup) {
	clowns := router.Group("/clowns")
	{
		clowns.GET("", r.handler.Index)
		clowns.POST("", r.handler.Store)
		clowns.PUT("/:id", r.handler.Update)
		clowns.DELETE("/:id", r.handler.Destroy)
	}
}
