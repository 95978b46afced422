package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecordCounter counts the rows of one repository's table.
type RecordCounter interface {
	Count() (int64, error)
}

// OpenLoanCounter counts loans that have not been returned yet.
type OpenLoanCounter interface {
	CountOpen() (int64, error)
}

type StatsResponse struct {
	TotalStudents   int64 `json:"total_students"`
	TotalBooks      int64 `json:"total_books"`
	CurrentlyIssued int64 `json:"currently_issued"`
}

// StatsController serves the aggregate counts shown on the home view.
type StatsController struct {
	students RecordCounter
	books    RecordCounter
	loans    OpenLoanCounter
}

func NewStatsController(students, books RecordCounter, loans OpenLoanCounter) *StatsController {
	return &StatsController{students: students, books: books, loans: loans}
}

// GetStats returns total students, total books, and open loans.
// GET /api/stats
func (ctl *StatsController) GetStats(c *gin.Context) {
	students, err := ctl.students.Count()
	if err != nil {
		respondError(c, err, "count students")
		return
	}
	books, err := ctl.books.Count()
	if err != nil {
		respondError(c, err, "count books")
		return
	}
	open, err := ctl.loans.CountOpen()
	if err != nil {
		respondError(c, err, "count open loans")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalStudents:   students,
		TotalBooks:      books,
		CurrentlyIssued: open,
	})
}
