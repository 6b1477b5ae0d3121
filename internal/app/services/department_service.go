package services

import (
	"context"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

func validateDepartment(d *models.Department) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return apperrors.NewValidationError("name", "This field may not be blank.")
	case strings.TrimSpace(d.Code) == "":
		return apperrors.NewValidationError("code", "This field may not be blank.")
	case d.EstablishedDate.IsZero():
		return apperrors.NewValidationError("established_date", "This field is required.")
	}
	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}
	return s.departmentRepo.Create(ctx, department)
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// ListDepartments lists departments
func (s *DepartmentService) ListDepartments(ctx context.Context, filter models.DepartmentFilter) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx, filter)
}

// UpdateDepartment replaces every writable field of the department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, department)
}

// PatchDepartment loads the department, applies the partial change and saves it
func (s *DepartmentService) PatchDepartment(ctx context.Context, id int64, apply func(*models.Department) error) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(department); err != nil {
		return nil, err
	}
	department.ID = id
	if err := s.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment deletes a department with its instructors, students and their enrollments
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}
