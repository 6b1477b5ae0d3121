package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/db"
	"github.com/edunexus/schoolrecords/internal/pkg/dberrors"
	"github.com/edunexus/schoolrecords/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var departmentColumns = []string{"id", "name", "code", "office_location", "phone_contact", "established_date"}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var d models.Department
	if err := row.Scan(&d.ID, &d.Name, &d.Code, &d.OfficeLocation, &d.PhoneContact, &d.EstablishedDate); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "code", "office_location", "phone_contact", "established_date").
		Values(department.Name, department.Code, department.OfficeLocation, department.PhoneContact, department.EstablishedDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		return translateWriteError(err, "creating department")
	}
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns...).
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, notFound("Department")
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// List retrieves departments ordered by id
func (r *DepartmentRepository) List(ctx context.Context, filter models.DepartmentFilter) ([]*models.Department, error) {
	query := r.sb.Select(departmentColumns...).From("departments").OrderBy("id")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"office_location": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("name", department.Name).
		Set("code", department.Code).
		Set("office_location", department.OfficeLocation).
		Set("phone_contact", department.PhoneContact).
		Set("established_date", department.EstablishedDate).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateWriteError(err, "updating department")
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("Department")
	}
	return nil
}

// Delete deletes a department together with its instructors and students in one transaction.
// Enrollments of the removed students go too; courses of the removed instructors lose their instructor.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockRow(ctx, tx, r.sb, "departments", id); err != nil {
			if dberrors.IsNoRows(err) {
				return notFound("Department")
			}
			return fmt.Errorf("error locking department: %w", err)
		}

		statements := []squirrel.Sqlizer{
			r.sb.Delete("enrollments").
				Where(squirrel.Expr("student_id IN (SELECT id FROM students WHERE department_id = ?)", id)),
			r.sb.Update("courses").
				Set("instructor_id", nil).
				Where(squirrel.Expr("instructor_id IN (SELECT id FROM instructors WHERE department_id = ?)", id)),
			r.sb.Delete("students").Where(squirrel.Eq{"department_id": id}),
			r.sb.Delete("instructors").Where(squirrel.Eq{"department_id": id}),
			r.sb.Delete("departments").Where(squirrel.Eq{"id": id}),
		}
		if err := execAll(ctx, tx, statements); err != nil {
			return fmt.Errorf("error deleting department: %w", err)
		}

		logger.Info().Int64("departmentID", id).Msg("Department deleted with dependents")
		return nil
	})
}

// Exists reports whether a department with id exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, r.sb, "departments", id)
}

// lockRow selects the row FOR UPDATE inside tx; pgx.ErrNoRows when it is missing
func lockRow(ctx context.Context, tx pgx.Tx, sb squirrel.StatementBuilderType, table string, id int64) error {
	sql, args, err := sb.Select("id").From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE").ToSql()
	if err != nil {
		return err
	}
	var locked int64
	return tx.QueryRow(ctx, sql, args...).Scan(&locked)
}

// execAll runs the statements in order on q
func execAll(ctx context.Context, q db.Querier, statements []squirrel.Sqlizer) error {
	for _, stmt := range statements {
		sql, args, err := stmt.ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func exists(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, table string, id int64) (bool, error) {
	sub, subArgs, err := sb.Select("1").From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, err
	}
	var found bool
	if err := q.QueryRow(ctx, "SELECT EXISTS("+sub+")", subArgs...).Scan(&found); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return found, nil
}
