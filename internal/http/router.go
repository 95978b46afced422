package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RouterConfig carries the controllers the router wires up.
type RouterConfig struct {
	Students *StudentsController
	Books    *BooksController
	Loans    *LoansController
	Stats    *StatsController
	Health   *HealthController
}

// RequestIDMiddleware tags every request with an id, keeping a caller's
// X-Request-ID when one is supplied.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Listing endpoints re-query the store on every request; there is no
// caching layer between the API and the database.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	router.GET("/health", cfg.Health.Status)

	api := router.Group("/api")
	{
		api.GET("/stats", cfg.Stats.GetStats)

		api.GET("/students", cfg.Students.ListStudents)
		api.POST("/students", cfg.Students.AddStudent)
		api.PUT("/students/:id", cfg.Students.UpdateStudent)
		api.DELETE("/students/:id", cfg.Students.DeleteStudent)

		api.GET("/books", cfg.Books.ListBooks)
		api.GET("/books/available", cfg.Books.ListAvailableBooks)
		api.POST("/books", cfg.Books.AddBook)
		api.PUT("/books/:id", cfg.Books.UpdateBook)
		api.DELETE("/books/:id", cfg.Books.DeleteBook)

		api.GET("/loans", cfg.Loans.ListLoans)
		api.GET("/loans/pickers", cfg.Loans.Pickers)
		api.POST("/loans", cfg.Loans.IssueBook)
		api.POST("/loans/:id/return", cfg.Loans.ReturnBook)
	}

	return router
}
