package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavikm/librarian/internal/entities"
	"github.com/bhavikm/librarian/internal/services"
)

// CirculationService defines the workflow operations the controller
// needs.
type CirculationService interface {
	Issue(studentID, bookID uint) (*entities.Loan, error)
	Return(loanID uint) (*entities.Loan, error)
	History() ([]entities.LoanDetail, error)
	Pickers() (*services.PickerData, error)
}

type LoansController struct {
	service CirculationService
}

func NewLoansController(service CirculationService) *LoansController {
	return &LoansController{service: service}
}

type issueRequest struct {
	StudentID uint `json:"student_id"`
	BookID    uint `json:"book_id"`
}

// ListLoans returns the loan history, open and closed, newest first.
// GET /api/loans
func (ctl *LoansController) ListLoans(c *gin.Context) {
	history, err := ctl.service.History()
	if err != nil {
		respondError(c, err, "list loans")
		return
	}
	c.JSON(http.StatusOK, gin.H{"loans": history, "count": len(history)})
}

// Pickers returns the data for the issue form: all students and the
// books currently available, re-queried on every call.
// GET /api/loans/pickers
func (ctl *LoansController) Pickers(c *gin.Context) {
	pickers, err := ctl.service.Pickers()
	if err != nil {
		respondError(c, err, "load pickers")
		return
	}
	c.JSON(http.StatusOK, pickers)
}

// IssueBook lends a book to a student, dated today.
// POST /api/loans
func (ctl *LoansController) IssueBook(c *gin.Context) {
	var req issueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	loan, err := ctl.service.Issue(req.StudentID, req.BookID)
	if err != nil {
		respondError(c, err, "issue book")
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Book issued.", Data: loan})
}

// ReturnBook closes a loan, dated today.
// POST /api/loans/:id/return
func (ctl *LoansController) ReturnBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	loan, err := ctl.service.Return(id)
	if err != nil {
		respondError(c, err, "return book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Book returned.", Data: loan})
}
