// Package loans provides database operations for loan records and the
// two compound circulation writes: issuing a book flips its status to
// Issued in the same transaction that creates the loan, returning it
// closes the loan and flips the status back.
package loans

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bhavikm/librarian/internal/entities"
)

// Repository handles all loan table operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new loans repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a single loan record.
func (r *Repository) GetByID(id uint) (*entities.Loan, error) {
	var loan entities.Loan
	err := r.db.First(&loan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &loan, nil
}

type detailRow struct {
	IssueID    uint
	StudentID  uint
	Name       string
	BookID     uint
	Title      string
	IssueDate  time.Time
	ReturnDate *time.Time
}

// ListDetailed retrieves every loan, open and closed, joined with the
// student's name and the book's title, newest loan first.
func (r *Repository) ListDetailed() ([]entities.LoanDetail, error) {
	var rows []detailRow
	err := r.db.Table("issued_books").
		Select("issued_books.issue_id, students.student_id, students.name, books.book_id, books.title, issued_books.issue_date, issued_books.return_date").
		Joins("JOIN students ON issued_books.student_id = students.student_id").
		Joins("JOIN books ON issued_books.book_id = books.book_id").
		Order("issued_books.issue_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]entities.LoanDetail, 0, len(rows))
	for _, row := range rows {
		detail := entities.LoanDetail{
			IssueID:     row.IssueID,
			StudentID:   row.StudentID,
			StudentName: row.Name,
			BookID:      row.BookID,
			BookTitle:   row.Title,
			IssueDate:   row.IssueDate.Format("2006-01-02"),
		}
		if row.ReturnDate != nil {
			detail.ReturnDate = row.ReturnDate.Format("2006-01-02")
		}
		details = append(details, detail)
	}
	return details, nil
}

// Issue creates a loan for the student/book pair and marks the book
// Issued. Both writes happen in one transaction: a failure in either
// leaves no half-issued state behind. The book must currently be
// Available, the student must exist.
func (r *Repository) Issue(studentID, bookID uint, issuedOn time.Time) (*entities.Loan, error) {
	loan := &entities.Loan{StudentID: studentID, BookID: bookID, IssueDate: issuedOn}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var student entities.Student
		if err := tx.First(&student, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrNotFound
			}
			return err
		}

		var book entities.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrNotFound
			}
			return err
		}
		if book.Status != entities.BookStatusAvailable {
			return entities.ErrBookUnavailable
		}

		if err := tx.Create(loan).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Book{}).
			Where("book_id = ?", bookID).
			Update("status", entities.BookStatusIssued).Error
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return closes the loan and marks its book Available again, in one
// transaction. Returning a loan whose return date is already set fails
// with ErrAlreadyReturned and changes nothing.
func (r *Repository) Return(loanID uint, returnedOn time.Time) (*entities.Loan, error) {
	var loan entities.Loan
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrNotFound
			}
			return err
		}
		if loan.ReturnDate != nil {
			return entities.ErrAlreadyReturned
		}

		if err := tx.Model(&entities.Loan{}).
			Where("issue_id = ?", loanID).
			Update("return_date", returnedOn).Error; err != nil {
			return err
		}
		loan.ReturnDate = &returnedOn

		return tx.Model(&entities.Book{}).
			Where("book_id = ?", loan.BookID).
			Update("status", entities.BookStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// CountOpen returns the number of loans that have not been returned yet.
func (r *Repository) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Loan{}).
		Where("return_date IS NULL").
		Count(&count).Error
	return count, err
}
