package entities

import "time"

// BookStatus is the lending state of a book.
type BookStatus string

const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusIssued    BookStatus = "Issued"
)

type Student struct {
	ID     uint   `gorm:"column:student_id;primaryKey" json:"student_id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Age    *int   `json:"age,omitempty"`
	Course string `gorm:"size:100" json:"course,omitempty"`
	Year   *int   `json:"year,omitempty"`
	Loans  []Loan `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

type Book struct {
	ID      uint       `gorm:"column:book_id;primaryKey" json:"book_id"`
	Title   string     `gorm:"size:255;not null;index" json:"title"`
	Author  string     `gorm:"size:150;index" json:"author,omitempty"`
	PubYear *int       `gorm:"column:pub_year" json:"pub_year,omitempty"`
	Status  BookStatus `gorm:"size:20;default:Available" json:"status"`
	Loans   []Loan     `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// Loan is one lending of a book to a student. It stays open until
// ReturnDate is set.
type Loan struct {
	ID         uint       `gorm:"column:issue_id;primaryKey" json:"issue_id"`
	StudentID  uint       `gorm:"index" json:"student_id"`
	BookID     uint       `gorm:"index" json:"book_id"`
	IssueDate  time.Time  `gorm:"type:date" json:"issue_date"`
	ReturnDate *time.Time `gorm:"type:date" json:"return_date,omitempty"`
}

func (Loan) TableName() string {
	return "issued_books"
}

// LoanDetail is the loan history row shown to users: the loan joined with
// the student's name and the book's title. Dates are ISO-8601 strings,
// ReturnDate is empty while the loan is open.
type LoanDetail struct {
	IssueID     uint   `json:"issue_id"`
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	BookID      uint   `json:"book_id"`
	BookTitle   string `json:"book_title"`
	IssueDate   string `json:"issue_date"`
	ReturnDate  string `json:"return_date"`
}
