package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavikm/librarian/internal/entities"
)

// BookStore defines the book repository operations the controller needs.
type BookStore interface {
	Create(book *entities.Book) error
	Search(query string) ([]entities.Book, error)
	ListAvailable() ([]entities.Book, error)
	Update(book *entities.Book) error
	Delete(id uint) error
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type bookRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	PubYear *int   `json:"pub_year"`
}

// ListBooks returns all books, or those matching the q parameter.
// GET /api/books?q=
func (ctl *BooksController) ListBooks(c *gin.Context) {
	found, err := ctl.store.Search(c.Query("q"))
	if err != nil {
		respondError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": found, "count": len(found)})
}

// ListAvailableBooks returns only books that can currently be issued.
// GET /api/books/available
func (ctl *BooksController) ListAvailableBooks(c *gin.Context) {
	found, err := ctl.store.ListAvailable()
	if err != nil {
		respondError(c, err, "list available books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": found, "count": len(found)})
}

// AddBook creates a book with status Available.
// POST /api/books
func (ctl *BooksController) AddBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	book := entities.Book{Title: req.Title, Author: req.Author, PubYear: req.PubYear}
	if err := ctl.store.Create(&book); err != nil {
		respondError(c, err, "add book")
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Book added.", Data: book})
}

// UpdateBook overwrites a book's descriptive fields, never its status.
// An unknown id is accepted and changes nothing.
// PUT /api/books/:id
func (ctl *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	book := entities.Book{ID: id, Title: req.Title, Author: req.Author, PubYear: req.PubYear}
	if err := ctl.store.Update(&book); err != nil {
		respondError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Book updated."})
}

// DeleteBook removes a book and all loan records referencing it, issued
// or not.
// DELETE /api/books/:id
func (ctl *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.store.Delete(id); err != nil {
		respondError(c, err, "delete book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Book deleted."})
}
