package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bhavikm/librarian/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite database at dbPath, creating the file if it
// does not exist, and migrates the library schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Student{},
		&entities.Book{},
		&entities.Loan{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// At most one open loan per book. The issue workflow checks book
	// status inside its transaction; this index backs that check at the
	// schema level.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_issued_books_open
		ON issued_books (book_id) WHERE return_date IS NULL`).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create open-loan index: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
