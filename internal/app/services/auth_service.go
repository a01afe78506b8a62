package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edupanel/campuscore/internal/app/models"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/repositories"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
	pkgauth "github.com/edupanel/campuscore/internal/pkg/auth"
)

// AuthService handles registration, login, refresh-token exchange and logout
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *pkgauth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository,
	jwtService *pkgauth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, user.ID, refreshToken, s.jwtService.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error persisting refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
	}, nil
}

// Register creates a staff account and signs it in.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName cannot be empty")
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         models.RoleStaff,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token so it can no longer be exchanged. The
// access token stays valid until it expires.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a token pair.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !pkgauth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The old
// refresh token is replaced, not kept alive.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userID, err := s.tokenRepo.LookupUserID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error looking up refresh token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading user for refresh: %w", err)
	}

	return s.issueTokens(ctx, user)
}
