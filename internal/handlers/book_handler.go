package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/models"
	"rest-playground/internal/repositories"
	"rest-playground/internal/responses"
)

// BookStore is the read-only catalog surface the handler needs.
type BookStore interface {
	List(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	FindBySlug(ctx context.Context, slug string) ([]models.Book, error)
	FindByYear(ctx context.Context, year int) ([]models.Book, error)
	FindMaxPages(ctx context.Context, pages int) ([]models.Book, error)
	Search(ctx context.Context, term string) ([]models.Book, error)
	Count(ctx context.Context) (int64, error)
	AvgPages(ctx context.Context) (float64, error)
	Dashboard(ctx context.Context) (models.BookDashboard, error)
}

// BookHandler serves the read-only book catalog. Books are returned as
// their model JSON without a resource envelope.
type BookHandler struct {
	books BookStore
}

func NewBookHandler(books BookStore) *BookHandler {
	return &BookHandler{books: books}
}

// Index handles GET /books
func (h *BookHandler) Index(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// Show handles GET /books/:id
func (h *BookHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.books.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Book not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// BySlug handles GET /book-finder/slug/:slug
func (h *BookHandler) BySlug(c *gin.Context) {
	books, err := h.books.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// ByYear handles GET /book-finder/year/:year
func (h *BookHandler) ByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		responses.GeneralError(c, http.StatusNotFound, "Not found")
		return
	}

	books, err := h.books.FindByYear(c.Request.Context(), year)
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// MaxPages handles GET /book-finder/max-pages/:pages
func (h *BookHandler) MaxPages(c *gin.Context) {
	pages, err := strconv.Atoi(c.Param("pages"))
	if err != nil {
		responses.GeneralError(c, http.StatusNotFound, "Not found")
		return
	}

	books, err := h.books.FindMaxPages(c.Request.Context(), pages)
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// Count handles GET /meta/count
func (h *BookHandler) Count(c *gin.Context) {
	count, err := h.books.Count(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to count books")
		return
	}

	c.JSON(http.StatusOK, count)
}

// AvgPages handles GET /meta/avg-pages
func (h *BookHandler) AvgPages(c *gin.Context) {
	avg, err := h.books.AvgPages(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to average pages")
		return
	}

	c.JSON(http.StatusOK, avg)
}

// Search handles GET /search/:term
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.books.Search(c.Request.Context(), c.Param("term"))
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to search books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// Dashboard handles GET /dashboard
func (h *BookHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.books.Dashboard(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
