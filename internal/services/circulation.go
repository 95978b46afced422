// Package services holds the circulation workflow: the orchestration of
// the loans and books repositories behind the issue/return operations.
package services

import (
	"time"

	"github.com/bhavikm/librarian/internal/entities"
)

// Circulation implements the issue/return workflow on top of the
// repositories. It holds no state; every read goes back to the store.
type Circulation struct {
	students StudentLister
	books    AvailableBookLister
	loans    LoanStore
	now      func() time.Time
}

// NewCirculation creates the circulation workflow service.
func NewCirculation(students StudentLister, books AvailableBookLister, loans LoanStore) *Circulation {
	return &Circulation{
		students: students,
		books:    books,
		loans:    loans,
		now:      time.Now,
	}
}

// today truncates the clock to a bare date; loan dates carry no time of
// day.
func (s *Circulation) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Issue lends the book to the student, dated today. Both selections are
// required.
func (s *Circulation) Issue(studentID, bookID uint) (*entities.Loan, error) {
	if studentID == 0 {
		return nil, entities.ErrStudentRequired
	}
	if bookID == 0 {
		return nil, entities.ErrBookRequired
	}
	return s.loans.Issue(studentID, bookID, s.today())
}

// Return closes the identified loan, dated today.
func (s *Circulation) Return(loanID uint) (*entities.Loan, error) {
	if loanID == 0 {
		return nil, entities.ErrLoanRequired
	}
	return s.loans.Return(loanID, s.today())
}

// History lists every loan, open and closed, newest first.
func (s *Circulation) History() ([]entities.LoanDetail, error) {
	return s.loans.ListDetailed()
}

// PickerData is what the issue form needs to populate its two pickers.
type PickerData struct {
	Students       []entities.Student `json:"students"`
	AvailableBooks []entities.Book    `json:"available_books"`
}

// Pickers re-queries the store for all students and the books that can
// currently be issued. Called fresh for every render of the issue form.
func (s *Circulation) Pickers() (*PickerData, error) {
	students, err := s.students.List()
	if err != nil {
		return nil, err
	}
	books, err := s.books.ListAvailable()
	if err != nil {
		return nil, err
	}
	return &PickerData{Students: students, AvailableBooks: books}, nil
}
