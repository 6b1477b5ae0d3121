package repositories

import (
	"context"
	"time"

	"github.com/edunexus/schoolrecords/internal/app/models"
)

// IDepartmentRepository defines department persistence
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, filter models.DepartmentFilter) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	// Delete removes the department with its instructors, students and their enrollments
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// IInstructorRepository defines instructor persistence
type IInstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	List(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	// Delete removes the instructor and clears it from their courses
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// IStudentRepository defines student persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	// Delete removes the student and their enrollments
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// ICourseRepository defines course persistence
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	// Delete removes the course and its enrollments
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// IEnrollmentRepository defines enrollment persistence
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error)
	// Update writes student, course, status and grade. The enrollment date is never changed.
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// IUserRepository defines user persistence
type IUserRepository interface {
	// CreateWithProfile inserts the user and its profile atomically
	CreateWithProfile(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfileFields(ctx context.Context, id int64, update models.UserProfileUpdate) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// IProfileRepository defines profile persistence. Profiles are never created on their own.
type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateAvatar(ctx context.Context, userID int64, avatar *string) error
}

// ITokenRepository tracks issued refresh tokens
type ITokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	// Revoke marks a live token as spent and returns its owner. It fails with
	// apperrors.ErrTokenRevoked when the token is unknown, expired or already spent.
	Revoke(ctx context.Context, jti string, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
