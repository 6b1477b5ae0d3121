package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

var enrollmentColumns = []string{"id", "student_id", "course_id", "enrollment_date", "status", "grade"}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEnrollment(row rowScanner) (*models.Enrollment, error) {
	var e models.Enrollment
	var status string
	if err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrollmentDate, &status, &e.Grade); err != nil {
		return nil, err
	}
	e.Status = models.EnrollmentStatus(status)
	return &e, nil
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "enrollment_date", "status", "grade").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate, string(enrollment.Status), enrollment.Grade).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID); err != nil {
		return translateWriteError(err, "creating enrollment")
	}
	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("Enrollment")
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// List retrieves enrollments filtered by student, course or status
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	query := r.sb.Select(enrollmentColumns...).From("enrollments").OrderBy("id")
	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		query = query.Where(squirrel.Eq{"course_id": *filter.CourseID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0)
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

// Update writes the mutable columns. enrollment_date is left alone.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("student_id", enrollment.StudentID).
		Set("course_id", enrollment.CourseID).
		Set("status", string(enrollment.Status)).
		Set("grade", enrollment.Grade).
		Where(squirrel.Eq{"id": enrollment.ID}).
		Suffix("RETURNING enrollment_date").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.EnrollmentDate); err != nil {
		if dberrors.IsNoRows(err) {
			return notFound("Enrollment")
		}
		return translateWriteError(err, "updating enrollment")
	}
	return nil
}

// Delete removes an enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("Enrollment")
	}
	return nil
}
