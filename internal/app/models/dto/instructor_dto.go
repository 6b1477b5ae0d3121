package dto

import (
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

// InstructorResponse represents instructor information
type InstructorResponse struct {
	ID         int64  `json:"id" example:"1"`
	FirstName  string `json:"first_name" example:"Maria"`
	LastName   string `json:"last_name" example:"Santos"`
	Email      string `json:"email" example:"maria.santos1@edunexus.ph"`
	HireDate   string `json:"hire_date" example:"2018-08-01"`
	Department int64  `json:"department" example:"1"`
}

// CreateInstructorRequest represents instructor creation data
type CreateInstructorRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=50"`
	LastName   string `json:"last_name" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email,max=254"`
	HireDate   string `json:"hire_date" binding:"required,datetime=2006-01-02"`
	Department int64  `json:"department" binding:"required,gt=0"`
}

// UpdateInstructorRequest is the full replacement body of PUT
type UpdateInstructorRequest = CreateInstructorRequest

// PatchInstructorRequest carries only the fields to change
type PatchInstructorRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=50"`
	LastName   *string `json:"last_name" binding:"omitempty,max=50"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	HireDate   *string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Department *int64  `json:"department" binding:"omitempty,gt=0"`
}

// ToModel converts the request into an instructor
func (r *CreateInstructorRequest) ToModel() (*models.Instructor, error) {
	hired, err := parseDateField("hire_date", r.HireDate)
	if err != nil {
		return nil, err
	}
	return &models.Instructor{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		HireDate:     hired,
		DepartmentID: r.Department,
	}, nil
}

// ApplyTo copies the supplied fields onto in
func (r *PatchInstructorRequest) ApplyTo(in *models.Instructor) error {
	if r.FirstName != nil {
		in.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		in.LastName = *r.LastName
	}
	if r.Email != nil {
		in.Email = *r.Email
	}
	if r.HireDate != nil {
		hired, err := parseDateField("hire_date", *r.HireDate)
		if err != nil {
			return err
		}
		in.HireDate = hired
	}
	if r.Department != nil {
		in.DepartmentID = *r.Department
	}
	return nil
}

// NewInstructorResponse maps an instructor to its wire form
func NewInstructorResponse(in *models.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:         in.ID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		HireDate:   helpers.FormatDate(in.HireDate),
		Department: in.DepartmentID,
	}
}

// NewInstructorListResponse maps a list of instructors
func NewInstructorListResponse(instructors []*models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, in := range instructors {
		out = append(out, NewInstructorResponse(in))
	}
	return out
}
