package dto

import (
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

// EnrollmentResponse represents enrollment information
type EnrollmentResponse struct {
	ID             int64   `json:"id" example:"1"`
	Student        int64   `json:"student" example:"1"`
	Course         int64   `json:"course" example:"1"`
	EnrollmentDate string  `json:"enrollment_date" example:"2025-08-15"`
	Status         string  `json:"status" example:"Enrolled" enums:"Enrolled,Dropped,Completed"`
	Grade          *string `json:"grade" example:"1.25"`
}

// CreateEnrollmentRequest represents enrollment creation data. The enrollment date is set by the server.
type CreateEnrollmentRequest struct {
	Student int64   `json:"student" binding:"required,gt=0"`
	Course  int64   `json:"course" binding:"required,gt=0"`
	Status  string  `json:"status" binding:"omitempty,enrollment_status" enums:"Enrolled,Dropped,Completed"`
	Grade   *string `json:"grade" binding:"omitempty,max=5"`
}

// UpdateEnrollmentRequest is the full replacement body of PUT
type UpdateEnrollmentRequest = CreateEnrollmentRequest

// PatchEnrollmentRequest carries only the fields to change
type PatchEnrollmentRequest struct {
	Student *int64  `json:"student" binding:"omitempty,gt=0"`
	Course  *int64  `json:"course" binding:"omitempty,gt=0"`
	Status  *string `json:"status" binding:"omitempty,enrollment_status" enums:"Enrolled,Dropped,Completed"`
	// Grade set to null clears it; its length is checked by the service
	Grade NullableString `json:"grade" swaggertype:"string"`
}

// ToModel converts the request into an enrollment
func (r *CreateEnrollmentRequest) ToModel() *models.Enrollment {
	return &models.Enrollment{
		StudentID: r.Student,
		CourseID:  r.Course,
		Status:    models.EnrollmentStatus(r.Status),
		Grade:     r.Grade,
	}
}

// ApplyTo copies the supplied fields onto e
func (r *PatchEnrollmentRequest) ApplyTo(e *models.Enrollment) error {
	if r.Student != nil {
		e.StudentID = *r.Student
	}
	if r.Course != nil {
		e.CourseID = *r.Course
	}
	if r.Status != nil {
		e.Status = models.EnrollmentStatus(*r.Status)
	}
	if r.Grade.Set {
		e.Grade = r.Grade.Value
	}
	return nil
}

// NewEnrollmentResponse maps an enrollment to its wire form
func NewEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:             e.ID,
		Student:        e.StudentID,
		Course:         e.CourseID,
		EnrollmentDate: helpers.FormatDate(e.EnrollmentDate),
		Status:         string(e.Status),
		Grade:          e.Grade,
	}
}

// NewEnrollmentListResponse maps a list of enrollments
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, NewEnrollmentResponse(e))
	}
	return out
}
