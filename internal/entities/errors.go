package entities

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected field value on a write operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

var (
	// ErrNotFound is returned when a referenced record no longer exists.
	ErrNotFound = errors.New("record not found")

	// Selection errors: a required picker value was not supplied.
	ErrStudentRequired = errors.New("select a student to issue a book")
	ErrBookRequired    = errors.New("select a book to issue")
	ErrLoanRequired    = errors.New("select an issued record to return")

	// ErrAlreadyReturned is returned when a return is requested on a loan
	// whose return date is already set.
	ErrAlreadyReturned = errors.New("this book is already returned")

	// ErrBookUnavailable is returned when issuing a book that is not
	// currently Available.
	ErrBookUnavailable = errors.New("book is not available for issue")
)
