package services

import (
	"context"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// CourseService handles operations related to courses
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	instructorRepo repositories.IInstructorRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repositories.ICourseRepository, instructorRepo repositories.IInstructorRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
	}
}

func (s *CourseService) validate(ctx context.Context, c *models.Course) error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return apperrors.NewValidationError("title", "This field may not be blank.")
	case strings.TrimSpace(c.CourseCode) == "":
		return apperrors.NewValidationError("course_code", "This field may not be blank.")
	case strings.TrimSpace(c.Semester) == "":
		return apperrors.NewValidationError("semester", "This field may not be blank.")
	case c.Credits < 0:
		return apperrors.NewValidationError("credits", "Ensure this value is greater than or equal to 0.")
	}
	if c.InstructorID == nil {
		return nil
	}
	return ensureExists(ctx, s.instructorRepo, "instructor", *c.InstructorID)
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validate(ctx, course); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses lists courses
func (s *CourseService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

// UpdateCourse replaces every writable field of the course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validate(ctx, course); err != nil {
		return err
	}
	return s.courseRepo.Update(ctx, course)
}

// PatchCourse loads the course, applies the partial change and saves it
func (s *CourseService) PatchCourse(ctx context.Context, id int64, apply func(*models.Course) error) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(course); err != nil {
		return nil, err
	}
	course.ID = id
	if err := s.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse deletes a course and its enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
