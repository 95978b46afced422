// Package books provides database operations for the book inventory.
package books

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bhavikm/librarian/internal/entities"
)

// Repository handles all book table operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(book *entities.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return &entities.ValidationError{Field: "title", Reason: "is required"}
	}
	return nil
}

// Create inserts a new book with status Available.
func (r *Repository) Create(book *entities.Book) error {
	if err := validate(book); err != nil {
		return err
	}
	book.Title = strings.TrimSpace(book.Title)
	book.Status = entities.BookStatusAvailable
	return r.db.Create(book).Error
}

// List retrieves all books in insertion order.
func (r *Repository) List() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("book_id").Find(&books).Error
	return books, err
}

// ListAvailable retrieves only books that can currently be issued.
func (r *Repository) ListAvailable() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("status = ?", entities.BookStatusAvailable).
		Order("book_id").
		Find(&books).Error
	return books, err
}

// Search retrieves books whose title or author contains query
// (case-insensitive). An empty query returns every book.
func (r *Repository) Search(query string) ([]entities.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.List()
	}
	var books []entities.Book
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern).
		Order("book_id").
		Find(&books).Error
	return books, err
}

// GetByID retrieves a single book.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Update overwrites the book's descriptive fields. The lending status is
// owned by the circulation workflow and is left untouched. Updating an id
// that does not exist is a no-op.
func (r *Repository) Update(book *entities.Book) error {
	if err := validate(book); err != nil {
		return err
	}
	return r.db.Model(&entities.Book{}).
		Where("book_id = ?", book.ID).
		Updates(map[string]any{
			"title":    strings.TrimSpace(book.Title),
			"author":   book.Author,
			"pub_year": book.PubYear,
		}).Error
}

// Delete removes the book and every loan record referencing it. A book
// that is currently issued is deleted all the same; its open loan goes
// with it.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Loan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
