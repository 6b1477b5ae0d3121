package models

import "time"

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	HireDate     time.Time `json:"hire_date" db:"hire_date"`
	DepartmentID int64     `json:"department" db:"department_id"`
}

// FullName is "<first> <last>"
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}

// InstructorFilter narrows instructor listings
type InstructorFilter struct {
	DepartmentID *int64
	Search       string
}
