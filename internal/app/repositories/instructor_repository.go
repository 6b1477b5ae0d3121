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

var instructorColumns = []string{"id", "first_name", "last_name", "email", "hire_date", "department_id"}

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInstructor(row rowScanner) (*models.Instructor, error) {
	var i models.Instructor
	if err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.HireDate, &i.DepartmentID); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Insert("instructors").
		Columns("first_name", "last_name", "email", "hire_date", "department_id").
		Values(instructor.FirstName, instructor.LastName, instructor.Email, instructor.HireDate, instructor.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create instructor query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&instructor.ID); err != nil {
		return translateWriteError(err, "creating instructor")
	}
	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor, err := scanInstructor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("Instructor")
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}
	return instructor, nil
}

// List retrieves instructors, optionally by department or name/email search
func (r *InstructorRepository) List(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error) {
	query := r.sb.Select(instructorColumns...).From("instructors").OrderBy("id")
	if filter.DepartmentID != nil {
		query = query.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	defer rows.Close()

	instructors := make([]*models.Instructor, 0)
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning instructor: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	return instructors, rows.Err()
}

// Update updates an existing instructor
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Update("instructors").
		Set("first_name", instructor.FirstName).
		Set("last_name", instructor.LastName).
		Set("email", instructor.Email).
		Set("hire_date", instructor.HireDate).
		Set("department_id", instructor.DepartmentID).
		Where(squirrel.Eq{"id": instructor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "updating instructor")
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("Instructor")
	}
	return nil
}

// Delete removes the instructor; their courses stay with no instructor
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockRow(ctx, tx, r.sb, "instructors", id); err != nil {
			if dberrors.IsNoRows(err) {
				return notFound("Instructor")
			}
			return fmt.Errorf("error locking instructor: %w", err)
		}

		statements := []squirrel.Sqlizer{
			r.sb.Update("courses").Set("instructor_id", nil).Where(squirrel.Eq{"instructor_id": id}),
			r.sb.Delete("instructors").Where(squirrel.Eq{"id": id}),
		}
		if err := execAll(ctx, tx, statements); err != nil {
			return fmt.Errorf("error deleting instructor: %w", err)
		}
		return nil
	})
}

// Exists reports whether an instructor with id exists
func (r *InstructorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "instructors", id)
}
