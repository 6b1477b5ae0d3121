package services

import (
	"context"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// StudentService handles operations related to students
type StudentService struct {
	studentRepo    repositories.IStudentRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.IStudentRepository, departmentRepo repositories.IDepartmentRepository) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *StudentService) validate(ctx context.Context, st *models.Student) error {
	switch {
	case strings.TrimSpace(st.FirstName) == "":
		return apperrors.NewValidationError("first_name", "This field may not be blank.")
	case strings.TrimSpace(st.LastName) == "":
		return apperrors.NewValidationError("last_name", "This field may not be blank.")
	case strings.TrimSpace(st.Email) == "":
		return apperrors.NewValidationError("email", "This field may not be blank.")
	case st.DateOfBirth.IsZero():
		return apperrors.NewValidationError("dob", "This field is required.")
	}
	return ensureExists(ctx, s.departmentRepo, "department", st.DepartmentID)
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validate(ctx, student); err != nil {
		return err
	}
	return s.studentRepo.Create(ctx, student)
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents lists students
func (s *StudentService) ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, filter)
}

// UpdateStudent replaces every writable field of the student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validate(ctx, student); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, student)
}

// PatchStudent loads the student, applies the partial change and saves it
func (s *StudentService) PatchStudent(ctx context.Context, id int64, apply func(*models.Student) error) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(student); err != nil {
		return nil, err
	}
	student.ID = id
	if err := s.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent deletes a student and their enrollments
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
