package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// InstructorService handles operations related to instructors
type InstructorService struct {
	instructorRepo repositories.IInstructorRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewInstructorService creates a new instructor service
func NewInstructorService(instructorRepo repositories.IInstructorRepository, departmentRepo repositories.IDepartmentRepository) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *InstructorService) validate(ctx context.Context, in *models.Instructor) error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return apperrors.NewValidationError("first_name", "This field may not be blank.")
	case strings.TrimSpace(in.LastName) == "":
		return apperrors.NewValidationError("last_name", "This field may not be blank.")
	case strings.TrimSpace(in.Email) == "":
		return apperrors.NewValidationError("email", "This field may not be blank.")
	case in.HireDate.IsZero():
		return apperrors.NewValidationError("hire_date", "This field is required.")
	}
	return ensureExists(ctx, s.departmentRepo, "department", in.DepartmentID)
}

// CreateInstructor creates a new instructor
func (s *InstructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := s.validate(ctx, instructor); err != nil {
		return err
	}
	return s.instructorRepo.Create(ctx, instructor)
}

// GetInstructor retrieves an instructor by ID
func (s *InstructorService) GetInstructor(ctx context.Context, id int64) (*models.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

// ListInstructors lists instructors
func (s *InstructorService) ListInstructors(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error) {
	return s.instructorRepo.List(ctx, filter)
}

// UpdateInstructor replaces every writable field of the instructor
func (s *InstructorService) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := s.validate(ctx, instructor); err != nil {
		return err
	}
	return s.instructorRepo.Update(ctx, instructor)
}

// PatchInstructor loads the instructor, applies the partial change and saves it
func (s *InstructorService) PatchInstructor(ctx context.Context, id int64, apply func(*models.Instructor) error) (*models.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(instructor); err != nil {
		return nil, err
	}
	instructor.ID = id
	if err := s.UpdateInstructor(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

// DeleteInstructor deletes an instructor; their courses are kept without an instructor
func (s *InstructorService) DeleteInstructor(ctx context.Context, id int64) error {
	return s.instructorRepo.Delete(ctx, id)
}

// existenceChecker is implemented by every repository that can be referenced
type existenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ensureExists returns a reference error when id does not point at a row
func ensureExists(ctx context.Context, repo existenceChecker, field string, id int64) error {
	if id <= 0 {
		return apperrors.NewReferenceError(field, id)
	}
	found, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", field, err)
	}
	if !found {
		return apperrors.NewReferenceError(field, id)
	}
	return nil
}
