package services

import (
	"context"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/helpers"
)

// MaxGradeLength is the longest accepted grade string
const MaxGradeLength = 5

// EnrollmentService handles operations related to enrollments
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, studentRepo repositories.IStudentRepository, courseRepo repositories.ICourseRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		now:            time.Now,
	}
}

// WithClock overrides the clock used for enrollment dates
func (s *EnrollmentService) WithClock(now func() time.Time) *EnrollmentService {
	s.now = now
	return s
}

func (s *EnrollmentService) validate(ctx context.Context, e *models.Enrollment) error {
	if e.Status == "" {
		e.Status = models.EnrollmentEnrolled
	}
	if !e.Status.IsValid() {
		return apperrors.NewValidationError("status", "\""+string(e.Status)+"\" is not a valid choice.")
	}
	if e.Grade != nil && len(*e.Grade) > MaxGradeLength {
		return apperrors.NewValidationError("grade", "Ensure this field has no more than 5 characters.")
	}
	if err := ensureExists(ctx, s.studentRepo, "student", e.StudentID); err != nil {
		return err
	}
	return ensureExists(ctx, s.courseRepo, "course", e.CourseID)
}

// CreateEnrollment creates an enrollment dated today. Status defaults to Enrolled.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if err := s.validate(ctx, enrollment); err != nil {
		return err
	}
	enrollment.EnrollmentDate = helpers.DateOnly(s.now())
	return s.enrollmentRepo.Create(ctx, enrollment)
}

// GetEnrollment retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// ListEnrollments lists enrollments
func (s *EnrollmentService) ListEnrollments(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.List(ctx, filter)
}

// UpdateEnrollment replaces student, course, status and grade. The enrollment date is kept.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if err := s.validate(ctx, enrollment); err != nil {
		return err
	}
	return s.enrollmentRepo.Update(ctx, enrollment)
}

// PatchEnrollment loads the enrollment, applies the partial change and saves it
func (s *EnrollmentService) PatchEnrollment(ctx context.Context, id int64, apply func(*models.Enrollment) error) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrolledOn := enrollment.EnrollmentDate
	if err := apply(enrollment); err != nil {
		return nil, err
	}
	enrollment.ID = id
	enrollment.EnrollmentDate = enrolledOn
	if err := s.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// DeleteEnrollment deletes an enrollment
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}
