package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	DateOfBirth  time.Time `json:"dob" db:"date_of_birth"`
	DepartmentID int64     `json:"department" db:"department_id"`
}

// StudentFilter narrows student listings
type StudentFilter struct {
	DepartmentID *int64
	Search       string
}
