package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/repositories"
	"github.com/edupanel/campuscore/internal/pkg/auth"
)

const defaultAdminEmail = "admin@campuscore.local"

// CreateDefaultData provisions the initial admin account if no user with the
// admin email exists yet. The password comes from ADMIN_PASSWORD, falling back
// to a development default.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin already present")
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using development default for admin account")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
