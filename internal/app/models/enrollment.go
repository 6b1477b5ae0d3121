package models

import "time"

// EnrollmentStatus is the state of a student's enrollment in a course
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "Enrolled"
	EnrollmentDropped   EnrollmentStatus = "Dropped"
	EnrollmentCompleted EnrollmentStatus = "Completed"
)

// EnrollmentStatuses lists the accepted statuses in display order
var EnrollmentStatuses = []EnrollmentStatus{EnrollmentEnrolled, EnrollmentDropped, EnrollmentCompleted}

// IsValid reports whether s is one of the known statuses
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentEnrolled, EnrollmentDropped, EnrollmentCompleted:
		return true
	}
	return false
}

// Enrollment links a student to a course. EnrollmentDate is set on creation and never changes.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"student" db:"student_id"`
	CourseID       int64            `json:"course" db:"course_id"`
	EnrollmentDate time.Time        `json:"enrollment_date" db:"enrollment_date"`
	Status         EnrollmentStatus `json:"status" db:"status"`
	Grade          *string          `json:"grade" db:"grade"`
}

// EnrollmentFilter narrows enrollment listings
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
	Status    EnrollmentStatus
}
