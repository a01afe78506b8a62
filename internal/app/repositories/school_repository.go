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

// SchoolRepository handles school database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const schoolColumns = "id, name, address, status, created_at, updated_at"

func scanSchool(row pgx.Row) (*models.School, error) {
	s := &models.School{}
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new school and fills in the generated fields.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Insert("schools").
		Columns("name", "address", "status").
		Values(school.Name, school.Address, school.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create school query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create school query")
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns).
		From("schools").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}

// GetAll retrieves all schools sorted by name ascending
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns).
		From("schools").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}

	return schools, nil
}

// Update applies a sparse patch to an existing school and returns the
// post-update view.
func (r *SchoolRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.School, error) {
	sql, args, err := r.sb.Update("schools").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + schoolColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error executing update school query")
		return nil, fmt.Errorf("error updating school: %w", err)
	}

	return school, nil
}

// Delete removes a school by ID. Schools still referenced by courses are not
// deleted; the caller gets ErrHasReferences instead of a dangling reference.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	var hasCourses bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE school_id = $1)`, id).Scan(&hasCourses)
	if err != nil {
		return fmt.Errorf("error checking school references: %w", err)
	}
	if hasCourses {
		return ErrHasReferences
	}

	sql, args, err := r.sb.Delete("schools").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete school query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// A course was created between the existence check and the delete.
			return ErrHasReferences
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error executing delete school query")
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
