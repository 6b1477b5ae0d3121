// Package inmem is a map backed implementation of the repository interfaces.
// It keeps the same uniqueness, reference and cascade rules as the Postgres schema
// and is used by service and handler tests.
package inmem

import (
	"fmt"
	"sort"
	"sync"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
)

// Store holds every table behind one lock so cascades are atomic
type Store struct {
	mu sync.RWMutex

	seq map[string]int64

	departments map[int64]models.Department
	instructors map[int64]models.Instructor
	students    map[int64]models.Student
	courses     map[int64]models.Course
	enrollments map[int64]models.Enrollment
	users       map[int64]models.User
	profiles    map[int64]models.Profile // keyed by user id
	tokens      map[string]models.RefreshToken
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		seq:         make(map[string]int64),
		departments: make(map[int64]models.Department),
		instructors: make(map[int64]models.Instructor),
		students:    make(map[int64]models.Student),
		courses:     make(map[int64]models.Course),
		enrollments: make(map[int64]models.Enrollment),
		users:       make(map[int64]models.User),
		profiles:    make(map[int64]models.Profile),
		tokens:      make(map[string]models.RefreshToken),
	}
}

// Repositories wires every in-memory repository onto the store
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		DepartmentRepository: &DepartmentRepository{s},
		InstructorRepository: &InstructorRepository{s},
		StudentRepository:    &StudentRepository{s},
		CourseRepository:     &CourseRepository{s},
		EnrollmentRepository: &EnrollmentRepository{s},
		UserRepository:       &UserRepository{s},
		ProfileRepository:    &ProfileRepository{s},
		TokenRepository:      &TokenRepository{s},
	}
}

// Counts reports the number of rows per table
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"departments": len(s.departments),
		"instructors": len(s.instructors),
		"students":    len(s.students),
		"courses":     len(s.courses),
		"enrollments": len(s.enrollments),
		"users":       len(s.users),
		"profiles":    len(s.profiles),
		"tokens":      len(s.tokens),
	}
}

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func sortedIDs[T any](table map[int64]T) []int64 {
	ids := make([]int64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func notFound(entity string) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found.", entity))
}

func missingReference(field string) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrReferenceNotFound,
		Message: "Referenced object does not exist.",
		Field:   field,
	}
}

func emailConflict(entity string) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrEmailAlreadyExists,
		Message: fmt.Sprintf("%s with this email already exists.", entity),
		Field:   "email",
	}
}

var (
	_ repositories.IDepartmentRepository = (*DepartmentRepository)(nil)
	_ repositories.IInstructorRepository = (*InstructorRepository)(nil)
	_ repositories.IStudentRepository    = (*StudentRepository)(nil)
	_ repositories.ICourseRepository     = (*CourseRepository)(nil)
	_ repositories.IEnrollmentRepository = (*EnrollmentRepository)(nil)
	_ repositories.IUserRepository       = (*UserRepository)(nil)
	_ repositories.IProfileRepository    = (*ProfileRepository)(nil)
	_ repositories.ITokenRepository      = (*TokenRepository)(nil)
)
