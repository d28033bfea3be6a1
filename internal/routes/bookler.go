package routes

import (
	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type BookRoutes struct {
	handler *handlers.BookHandler
}

func NewBookRoutes(handler *handlers.BookHandler) *BookRoutes {
	return &BookRoutes{handler: handler}
}

func (r *BookRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/books", r.handler.Index)
	router.GET("/books/:id", r.handler.Show)

	finder := router.Group("/book-finder")
	{
		finder.GET("/slug/:slug", r.handler.BySlug)
		finder.GET("/year/:year", r.handler.ByYear)
		finder.GET("/max-pages/:pages", r.handler.MaxPages)
	}

	meta := router.Group("/meta")
	{
		meta.GET("/count", r.handler.Count)
		meta.GET("/avg-pages", r.handler.AvgPages)
	}

	router.GET("/search/:term", r.handler.Search)
	router.GET("/dashboard", r.handler.Dashboard)
}
