package routes

import (
	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type TwitterRoutes struct {
	tweets *handlers.TweetHandler
	users  *handlers.UserHandler
}

func NewTwitterRoutes(tweets *handlers.TweetHandler, users *handlers.UserHandler) *TwitterRoutes {
	return &TwitterRoutes{
		tweets: tweets,
		users:  users,
	}
}

func (r *TwitterRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	tweets := router.Group("/tweets")
	{
		tweets.GET("", r.tweets.Index)
		tweets.POST("", authenticate, r.tweets.Store)
		tweets.POST("/:id/like", authenticate, r.tweets.Like)
	}

	router.GET("/users/:id", r.users.Show)
	router.GET("/users/:id/tweets", r.users.Tweets)
	router.GET("/users/top", authenticate, r.users.Top)
	router.GET("/users/new", authenticate, r.users.New)

	me := router.Group("/me")
	me.Use(authenticate)
	{
		me.GET("", r.users.Me)
		me.PUT("", r.users.UpdateMe)
		me.DELETE("", r.users.DeleteMe)
	}
}
