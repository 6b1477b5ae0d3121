package dto

import "github.com/edunexus/schoolrecords/internal/app/models"

// CourseResponse represents course information. Instructor is null when unassigned.
type CourseResponse struct {
	ID         int64  `json:"id" example:"1"`
	Title      string `json:"title" example:"Data Structures"`
	CourseCode string `json:"course_code" example:"SUBJ-101"`
	Credits    int    `json:"credits" example:"3"`
	Semester   string `json:"semester" example:"1st Sem 2025-2026"`
	Instructor *int64 `json:"instructor" example:"1"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title      string `json:"title" binding:"required,max=100"`
	CourseCode string `json:"course_code" binding:"required,max=20"`
	Credits    *int   `json:"credits" binding:"required,min=0"`
	Semester   string `json:"semester" binding:"required,max=50"`
	Instructor *int64 `json:"instructor" binding:"omitempty,gt=0"`
}

// UpdateCourseRequest is the full replacement body of PUT
type UpdateCourseRequest = CreateCourseRequest

// PatchCourseRequest carries only the fields to change. An explicit null instructor unassigns it.
type PatchCourseRequest struct {
	Title      *string    `json:"title" binding:"omitempty,max=100"`
	CourseCode *string    `json:"course_code" binding:"omitempty,max=20"`
	Credits    *int       `json:"credits" binding:"omitempty,min=0"`
	Semester   *string    `json:"semester" binding:"omitempty,max=50"`
	Instructor NullableID `json:"instructor" swaggertype:"integer"`
}

// ToModel converts the request into a course
func (r *CreateCourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Title:        r.Title,
		CourseCode:   r.CourseCode,
		Semester:     r.Semester,
		InstructorID: r.Instructor,
	}
	if r.Credits != nil {
		course.Credits = *r.Credits
	}
	return course
}

// ApplyTo copies the supplied fields onto c
func (r *PatchCourseRequest) ApplyTo(c *models.Course) error {
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.CourseCode != nil {
		c.CourseCode = *r.CourseCode
	}
	if r.Credits != nil {
		c.Credits = *r.Credits
	}
	if r.Semester != nil {
		c.Semester = *r.Semester
	}
	if r.Instructor.Set {
		c.InstructorID = r.Instructor.Value
	}
	return nil
}

// NewCourseResponse maps a course to its wire form
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:         c.ID,
		Title:      c.Title,
		CourseCode: c.CourseCode,
		Credits:    c.Credits,
		Semester:   c.Semester,
		Instructor: c.InstructorID,
	}
}

// NewCourseListResponse maps a list of courses
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
