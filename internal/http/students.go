package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavikm/librarian/internal/entities"
)

// StudentStore defines the student repository operations the controller
// needs.
type StudentStore interface {
	Create(student *entities.Student) error
	Search(query string) ([]entities.Student, error)
	Update(student *entities.Student) error
	Delete(id uint) error
}

type StudentsController struct {
	store StudentStore
}

func NewStudentsController(store StudentStore) *StudentsController {
	return &StudentsController{store: store}
}

type studentRequest struct {
	Name   string `json:"name"`
	Age    *int   `json:"age"`
	Course string `json:"course"`
	Year   *int   `json:"year"`
}

// ListStudents returns all students, or those matching the q parameter.
// GET /api/students?q=
func (ctl *StudentsController) ListStudents(c *gin.Context) {
	found, err := ctl.store.Search(c.Query("q"))
	if err != nil {
		respondError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": found, "count": len(found)})
}

// AddStudent creates a student record.
// POST /api/students
func (ctl *StudentsController) AddStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	student := entities.Student{Name: req.Name, Age: req.Age, Course: req.Course, Year: req.Year}
	if err := ctl.store.Create(&student); err != nil {
		respondError(c, err, "add student")
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Student added.", Data: student})
}

// UpdateStudent overwrites a student's fields. An unknown id is accepted
// and changes nothing.
// PUT /api/students/:id
func (ctl *StudentsController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	student := entities.Student{ID: id, Name: req.Name, Age: req.Age, Course: req.Course, Year: req.Year}
	if err := ctl.store.Update(&student); err != nil {
		respondError(c, err, "update student")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Student updated."})
}

// DeleteStudent removes a student and all loan records referencing it.
// The confirmation prompt lives with the caller.
// DELETE /api/students/:id
func (ctl *StudentsController) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.store.Delete(id); err != nil {
		respondError(c, err, "delete student")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Student deleted."})
}
