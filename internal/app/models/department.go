package models

import "time"

// Department represents an academic department
type Department struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Code            string    `json:"code" db:"code"`
	OfficeLocation  string    `json:"office_location" db:"office_location"`
	PhoneContact    string    `json:"phone_contact" db:"phone_contact"`
	EstablishedDate time.Time `json:"established_date" db:"established_date"`
}

// DepartmentFilter narrows department listings
type DepartmentFilter struct {
	Search string
}
