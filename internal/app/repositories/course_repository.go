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

// CourseRepository handles course database operations
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

// Read paths join the referenced school and session so list rows can render
// display names without extra round trips.
var courseSelectColumns = []string{
	"c.id", "c.name", "c.code", "c.school_id", "c.session_id", "c.status",
	"c.created_at", "c.updated_at", "s.name AS school_name", "ss.name AS session_name",
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseSelectColumns...).
		From("courses c").
		Join("schools s ON s.id = c.school_id").
		Join("sessions ss ON ss.id = c.session_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.SchoolID, &c.SessionID, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.SchoolName, &c.SessionName)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course and fills in the generated fields.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "code", "school_id", "session_id", "status").
		Values(course.Name, course.Code, course.SchoolID, course.SessionID, course.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with the referenced names populated
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses sorted by name ascending, optionally filtered
// by school and/or session.
func (r *CourseRepository) GetAll(ctx context.Context, schoolID, sessionID int64) ([]*models.Course, error) {
	builder := r.selectCourses().OrderBy("c.name ASC")
	if schoolID > 0 {
		builder = builder.Where(squirrel.Eq{"c.school_id": schoolID})
	}
	if sessionID > 0 {
		builder = builder.Where(squirrel.Eq{"c.session_id": sessionID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update applies a sparse patch to an existing course and returns the
// post-update view with referenced names populated.
func (r *CourseRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Course, error) {
	sql, args, err := r.sb.Update("courses").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	var updatedID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
