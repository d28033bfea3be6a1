package routes

import (
	"github.com/gin-gonic/gin"

	"rest-playground/internal/handlers"
)

type FinanceRoutes struct {
	transactions *handlers.TransactionHandler
	categories   *handlers.CategoryHandler
	users        *handlers.UserHandler
}

func NewFinanceRoutes(transactions *handlers.TransactionHandler, categories *handlers.CategoryHandler, users *handlers.UserHandler) *FinanceRoutes {
	return &FinanceRoutes{
		transactions: transactions,
		categories:   categories,
		users:        users,
	}
}

func (r *FinanceRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	transactions := router.Group("/transactions")
	{
		transactions.GET("", r.transactions.Index)
		transactions.GET("/totals", r.transactions.Totals)
		transactions.PUT("/:id/switch-type", r.transactions.SwitchType)
		transactions.DELETE("/:id", r.transactions.Destroy)
		transactions.POST("", authenticate, r.transactions.Store)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", r.categories.Index)
		categories.GET("/:id", r.categories.Show)
		categories.PUT("/:id", r.categories.Update)
		categories.GET("/:id/transactions", r.categories.Transactions)
	}

	account := router.Group("/users/my-account")
	account.Use(authenticate)
	{
		account.GET("", r.users.MyAccount)
		account.DELETE("", r.users.DestroyMyAccount)
	}
}
