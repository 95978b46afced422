package database

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavikm/librarian/internal/entities"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()

	dbPath := "./test_database_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_CreatesSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	for _, table := range []string{"students", "books", "issued_books"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestNewDatabase_CreatesFileIfMissing(t *testing.T) {
	dbPath := "./test_database_missing.db"
	os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove(dbPath)
	}()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenLoanIndex_RejectsSecondOpenLoan(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	student := entities.Student{Name: "Asha Rao"}
	require.NoError(t, db.DB.Create(&student).Error)
	book := entities.Book{Title: "Compilers", Status: entities.BookStatusAvailable}
	require.NoError(t, db.DB.Create(&book).Error)

	today := time.Now()
	first := entities.Loan{StudentID: student.ID, BookID: book.ID, IssueDate: today}
	require.NoError(t, db.DB.Create(&first).Error)

	second := entities.Loan{StudentID: student.ID, BookID: book.ID, IssueDate: today}
	err := db.DB.Create(&second).Error
	assert.Error(t, err, "a book must have at most one open loan")

	// Closing the first loan frees the book for a new one.
	require.NoError(t, db.DB.Model(&entities.Loan{}).
		Where("issue_id = ?", first.ID).
		Update("return_date", today).Error)
	third := entities.Loan{StudentID: student.ID, BookID: book.ID, IssueDate: today}
	assert.NoError(t, db.DB.Create(&third).Error)
}
