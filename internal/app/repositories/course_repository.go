package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/db"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var courseColumns = []string{"id", "title", "course_code", "credits", "semester", "instructor_id"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var c models.Course
	if err := row.Scan(&c.ID, &c.Title, &c.CourseCode, &c.Credits, &c.Semester, &c.InstructorID); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "course_code", "credits", "semester", "instructor_id").
		Values(course.Title, course.CourseCode, course.Credits, course.Semester, course.InstructorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		return translateWriteError(err, "creating course")
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("Course")
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// List retrieves courses filtered by instructor, semester or title/code search
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	query := r.sb.Select(courseColumns...).From("courses").OrderBy("id")
	if filter.InstructorID != nil {
		query = query.Where(squirrel.Eq{"instructor_id": *filter.InstructorID})
	}
	if filter.Semester != "" {
		query = query.Where(squirrel.Eq{"semester": filter.Semester})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"course_code": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("course_code", course.CourseCode).
		Set("credits", course.Credits).
		Set("semester", course.Semester).
		Set("instructor_id", course.InstructorID).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "updating course")
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("Course")
	}
	return nil
}

// Delete removes the course and its enrollments
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockRow(ctx, tx, r.sb, "courses", id); err != nil {
			if dberrors.IsNoRows(err) {
				return notFound("Course")
			}
			return fmt.Errorf("error locking course: %w", err)
		}

		statements := []squirrel.Sqlizer{
			r.sb.Delete("enrollments").Where(squirrel.Eq{"course_id": id}),
			r.sb.Delete("courses").Where(squirrel.Eq{"id": id}),
		}
		if err := execAll(ctx, tx, statements); err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})
}

// Exists reports whether a course with id exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "courses", id)
}
