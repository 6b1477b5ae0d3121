package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository IDepartmentRepository
	InstructorRepository IInstructorRepository
	StudentRepository    IStudentRepository
	CourseRepository     ICourseRepository
	EnrollmentRepository IEnrollmentRepository
	UserRepository       IUserRepository
	ProfileRepository    IProfileRepository
	TokenRepository      ITokenRepository
}

// NewRepositories initializes all Postgres repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		UserRepository:       NewUserRepository(db),
		ProfileRepository:    NewProfileRepository(db),
		TokenRepository:      NewTokenRepository(db),
	}
}

var (
	_ IDepartmentRepository = (*DepartmentRepository)(nil)
	_ IInstructorRepository = (*InstructorRepository)(nil)
	_ IStudentRepository    = (*StudentRepository)(nil)
	_ ICourseRepository     = (*CourseRepository)(nil)
	_ IEnrollmentRepository = (*EnrollmentRepository)(nil)
	_ IUserRepository       = (*UserRepository)(nil)
	_ IProfileRepository    = (*ProfileRepository)(nil)
	_ ITokenRepository      = (*TokenRepository)(nil)
)
