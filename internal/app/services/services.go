package services

import (
	"bytes"
	"io"

	"github.com/edunexus/schoolrecords/internal/app/repositories"
	"github.com/edunexus/schoolrecords/internal/pkg/auth"
	"github.com/edunexus/schoolrecords/internal/pkg/avatar"
	"github.com/edunexus/schoolrecords/internal/pkg/filestorage"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
)

// Services groups every service used by the HTTP layer
type Services struct {
	DepartmentService *DepartmentService
	InstructorService *InstructorService
	StudentService    *StudentService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
	AuthService       *AuthService
	ProfileService    *ProfileService
}

// Dependencies are the collaborators the services need besides repositories
type Dependencies struct {
	JWTService *auth.JWTService
	Blacklist  TokenBlacklist
	Storage    filestorage.FileStorage
	Avatar     *avatar.Processor
}

// NewServices builds every service on top of repos
func NewServices(repos *repositories.Repositories, deps Dependencies) *Services {
	if deps.Avatar == nil {
		deps.Avatar = avatar.NewProcessor(0, 0)
	}
	return &Services{
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		InstructorService: NewInstructorService(repos.InstructorRepository, repos.DepartmentRepository),
		StudentService:    NewStudentService(repos.StudentRepository, repos.DepartmentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.InstructorRepository),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository),
		AuthService: NewAuthService(repos.UserRepository, repos.TokenRepository, deps.JWTService,
			deps.Blacklist, logger.Component("auth")),
		ProfileService: NewProfileService(repos.UserRepository, repos.ProfileRepository, deps.Storage,
			deps.Avatar, logger.Component("profile")),
	}
}

func newBytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}
