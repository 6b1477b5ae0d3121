package dto

import (
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

// StudentResponse represents student information. Date of birth is sent as dob.
type StudentResponse struct {
	ID         int64  `json:"id" example:"1"`
	FirstName  string `json:"first_name" example:"Jose"`
	LastName   string `json:"last_name" example:"Reyes"`
	Email      string `json:"email" example:"jose1@student.edunexus.ph"`
	DOB        string `json:"dob" example:"2003-04-12"`
	Department int64  `json:"department" example:"1"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=50"`
	LastName   string `json:"last_name" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email,max=254"`
	DOB        string `json:"dob" binding:"required,datetime=2006-01-02"`
	Department int64  `json:"department" binding:"required,gt=0"`
}

// UpdateStudentRequest is the full replacement body of PUT
type UpdateStudentRequest = CreateStudentRequest

// PatchStudentRequest carries only the fields to change
type PatchStudentRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=50"`
	LastName   *string `json:"last_name" binding:"omitempty,max=50"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	DOB        *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Department *int64  `json:"department" binding:"omitempty,gt=0"`
}

// ToModel converts the request into a student
func (r *CreateStudentRequest) ToModel() (*models.Student, error) {
	dob, err := parseDateField("dob", r.DOB)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		DateOfBirth:  dob,
		DepartmentID: r.Department,
	}, nil
}

// ApplyTo copies the supplied fields onto st
func (r *PatchStudentRequest) ApplyTo(st *models.Student) error {
	if r.FirstName != nil {
		st.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		st.LastName = *r.LastName
	}
	if r.Email != nil {
		st.Email = *r.Email
	}
	if r.DOB != nil {
		dob, err := parseDateField("dob", *r.DOB)
		if err != nil {
			return err
		}
		st.DateOfBirth = dob
	}
	if r.Department != nil {
		st.DepartmentID = *r.Department
	}
	return nil
}

// NewStudentResponse maps a student to its wire form
func NewStudentResponse(st *models.Student) StudentResponse {
	return StudentResponse{
		ID:         st.ID,
		FirstName:  st.FirstName,
		LastName:   st.LastName,
		Email:      st.Email,
		DOB:        helpers.FormatDate(st.DateOfBirth),
		Department: st.DepartmentID,
	}
}

// NewStudentListResponse maps a list of students
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, NewStudentResponse(st))
	}
	return out
}
