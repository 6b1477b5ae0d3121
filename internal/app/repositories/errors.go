package repositories

import (
	"fmt"

	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
)

// uniqueConstraintErrors maps unique constraint names to the conflict they signal
var uniqueConstraintErrors = map[string]func() error{
	"instructors_email_key": func() error { return emailConflict("instructor") },
	"students_email_key":    func() error { return emailConflict("student") },
	"users_email_key":       func() error { return emailConflict("user") },
	"users_username_key": func() error {
		return &apperrors.CustomError{
			Err:     apperrors.ErrUsernameAlreadyExists,
			Message: "A user with that username already exists.",
			Field:   "username",
		}
	},
}

// foreignKeyFields maps foreign key constraint names to the request field holding the reference
var foreignKeyFields = map[string]string{
	"instructors_department_id_fkey": "department",
	"students_department_id_fkey":    "department",
	"courses_instructor_id_fkey":     "instructor",
	"enrollments_student_id_fkey":    "student",
	"enrollments_course_id_fkey":     "course",
}

func emailConflict(entity string) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrEmailAlreadyExists,
		Message: fmt.Sprintf("%s with this email already exists.", entity),
		Field:   "email",
	}
}

func notFound(entity string) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found.", entity))
}

// translateWriteError turns constraint violations into application errors.
// Other errors are wrapped with op.
func translateWriteError(err error, op string) error {
	if err == nil {
		return nil
	}
	if dberrors.IsDuplicateConstraintError(err, "") {
		if build, ok := uniqueConstraintErrors[dberrors.ConstraintName(err)]; ok {
			return build()
		}
		return apperrors.NewConflictError("A record with these values already exists.")
	}
	if dberrors.IsForeignKeyViolation(err) {
		return &apperrors.CustomError{
			Err:     apperrors.ErrReferenceNotFound,
			Message: "Referenced object does not exist.",
			Field:   foreignKeyFields[dberrors.ConstraintName(err)],
		}
	}
	return fmt.Errorf("error %s: %w", op, err)
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}
