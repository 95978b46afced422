package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavikm/librarian/internal/database"
	"github.com/bhavikm/librarian/internal/database/books"
	"github.com/bhavikm/librarian/internal/database/loans"
	"github.com/bhavikm/librarian/internal/database/students"
	"github.com/bhavikm/librarian/internal/entities"
	"github.com/bhavikm/librarian/internal/services"
)

// setupAPI builds the full router over a throwaway database, the way the
// entrypoint does.
func setupAPI(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	studentRepo := students.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	loanRepo := loans.NewRepository(db.DB)
	circulation := services.NewCirculation(studentRepo, bookRepo, loanRepo)

	router := NewRouter(RouterConfig{
		Students: NewStudentsController(studentRepo),
		Books:    NewBooksController(bookRepo),
		Loans:    NewLoansController(circulation),
		Stats:    NewStatsController(studentRepo, bookRepo, loanRepo),
		Health:   NewHealthController(db, "test"),
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStudentsAPI_AddAndList(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/students", gin.H{
		"name": "Asha Rao", "age": 20, "course": "CS", "year": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Student added.", created.Message)

	w = doJSON(t, router, "GET", "/api/students", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Students []entities.Student `json:"students"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Equal(t, 1, listed.Count)
	assert.Equal(t, "Asha Rao", listed.Students[0].Name)
	assert.NotZero(t, listed.Students[0].ID)
}

func TestStudentsAPI_AddRejectsBlankName(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/students", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "name")
}

func TestStudentsAPI_Search(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	doJSON(t, router, "POST", "/api/students", gin.H{"name": "Asha Rao", "course": "CS"})
	doJSON(t, router, "POST", "/api/students", gin.H{"name": "Ravi Kumar", "course": "Mathematics"})

	w := doJSON(t, router, "GET", "/api/students?q=math", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Students []entities.Student `json:"students"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Students, 1)
	assert.Equal(t, "Ravi Kumar", listed.Students[0].Name)
}

func TestStudentsAPI_UpdateAndDelete(t *testing.T) {
	router, db, cleanup := setupAPI(t)
	defer cleanup()

	doJSON(t, router, "POST", "/api/students", gin.H{"name": "Asha"})

	var student entities.Student
	require.NoError(t, db.DB.First(&student).Error)

	w := doJSON(t, router, "PUT", "/api/students/1", gin.H{"name": "Asha Rao", "course": "CS"})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.DB.First(&student, student.ID).Error)
	assert.Equal(t, "Asha Rao", student.Name)

	w = doJSON(t, router, "DELETE", "/api/students/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Student{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStudentsAPI_InvalidIDParam(t *testing.T) {
	router, _, cleanup := setupAPI(t)
	defer cleanup()

	w := doJSON(t, router, "DELETE", "/api/students/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
