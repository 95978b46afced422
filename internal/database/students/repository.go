// Package students provides database operations for student records.
package students

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bhavikm/librarian/internal/entities"
)

// Repository handles all student table operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new students repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func validate(student *entities.Student) error {
	if strings.TrimSpace(student.Name) == "" {
		return &entities.ValidationError{Field: "name", Reason: "is required"}
	}
	if student.Age != nil && *student.Age < 0 {
		return &entities.ValidationError{Field: "age", Reason: "must not be negative"}
	}
	return nil
}

// Create inserts a new student. The ID is assigned by the store.
func (r *Repository) Create(student *entities.Student) error {
	if err := validate(student); err != nil {
		return err
	}
	student.Name = strings.TrimSpace(student.Name)
	return r.db.Create(student).Error
}

// List retrieves all students in insertion order.
func (r *Repository) List() ([]entities.Student, error) {
	var students []entities.Student
	err := r.db.Order("student_id").Find(&students).Error
	return students, err
}

// Search retrieves students whose name or course contains query
// (case-insensitive). An empty query returns every student.
func (r *Repository) Search(query string) ([]entities.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.List()
	}
	var students []entities.Student
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(course) LIKE LOWER(?)", pattern, pattern).
		Order("student_id").
		Find(&students).Error
	return students, err
}

// GetByID retrieves a single student.
func (r *Repository) GetByID(id uint) (*entities.Student, error) {
	var student entities.Student
	err := r.db.First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// Update overwrites the student's fields. Updating an id that does not
// exist is a no-op.
func (r *Repository) Update(student *entities.Student) error {
	if err := validate(student); err != nil {
		return err
	}
	return r.db.Model(&entities.Student{}).
		Where("student_id = ?", student.ID).
		Updates(map[string]any{
			"name":   strings.TrimSpace(student.Name),
			"age":    student.Age,
			"course": student.Course,
			"year":   student.Year,
		}).Error
}

// Delete removes the student and every loan record referencing it.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&entities.Loan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Student{}, id).Error
	})
}

// Count returns the total number of students.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Student{}).Count(&count).Error
	return count, err
}
