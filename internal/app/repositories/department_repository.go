package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/pkg/dberrors"
	"github.com/edupanel/campuscore/internal/pkg/logger"
)

// DepartmentRepository handles visit-department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const departmentColumns = "id, name, description, status, created_at, updated_at"

func scanDepartment(row pgx.Row) (*models.Department, error) {
	d := &models.Department{}
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create inserts a new department and fills in the generated fields.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "description", "status").
		Values(department.Name, department.Description, department.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create department query")
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns).
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return department, nil
}

// GetAll retrieves all departments sorted by name ascending
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns).
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Update applies a sparse patch to an existing department and returns the
// post-update view. Only the columns present in updates are written.
func (r *DepartmentRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Department, error) {
	sql, args, err := r.sb.Update("departments").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + departmentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update department query: %w", err)
	}

	department, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing update department query")
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	return department, nil
}

// Delete removes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
