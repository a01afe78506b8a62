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

// SessionRepository handles academic-session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const sessionColumns = "id, name, start_date, end_date, status, created_at, updated_at"

func scanSession(row pgx.Row) (*models.Session, error) {
	s := &models.Session{}
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new session and fills in the generated fields.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("name", "start_date", "end_date", "status").
		Values(session.Name, session.StartDate, session.EndDate, session.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create session query")
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	sql, args, err := r.sb.Select(sessionColumns).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session, err := scanSession(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session by ID: %w", err)
	}

	return session, nil
}

// GetAll retrieves all sessions sorted by name ascending
func (r *SessionRepository) GetAll(ctx context.Context) ([]*models.Session, error) {
	sql, args, err := r.sb.Select(sessionColumns).
		From("sessions").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list sessions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list sessions query")
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// Update applies a sparse patch to an existing session and returns the
// post-update view.
func (r *SessionRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Session, error) {
	sql, args, err := r.sb.Update("sessions").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + sessionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update session query: %w", err)
	}

	session, err := scanSession(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error executing update session query")
		return nil, fmt.Errorf("error updating session: %w", err)
	}

	return session, nil
}

// Delete removes a session by ID, refusing while courses still reference it.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	var hasCourses bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE session_id = $1)`, id).Scan(&hasCourses)
	if err != nil {
		return fmt.Errorf("error checking session references: %w", err)
	}
	if hasCourses {
		return ErrHasReferences
	}

	sql, args, err := r.sb.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrHasReferences
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error executing delete session query")
		return fmt.Errorf("error deleting session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
