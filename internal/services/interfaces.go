package services

import (
	"time"

	"github.com/bhavikm/librarian/internal/entities"
)

// StudentLister provides the student side of the issue picker.
type StudentLister interface {
	List() ([]entities.Student, error)
}

// AvailableBookLister provides the book side of the issue picker. Only
// Available books are offered as issue candidates.
type AvailableBookLister interface {
	ListAvailable() ([]entities.Book, error)
}

// LoanStore performs the circulation writes and the joined history read.
type LoanStore interface {
	Issue(studentID, bookID uint, issuedOn time.Time) (*entities.Loan, error)
	Return(loanID uint, returnedOn time.Time) (*entities.Loan, error)
	ListDetailed() ([]entities.LoanDetail, error)
}
