package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/pkg/apperrors"
)

func TestLoginReturnsTokenPair(t *testing.T) {
	env := newTestEnv(t)
	env.auth.login = func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
		if req.Email != "staff@campuscore.local" {
			t.Errorf("email = %q", req.Email)
		}
		return &dto.AuthResponse{
			Token: dto.TokenResponse{AccessToken: "access", TokenType: "Bearer", ExpiresIn: 3600, RefreshToken: "refresh"},
			User:  dto.UserResponse{ID: 1, Email: req.Email, Role: "STAFF"},
		}, nil
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "staff@campuscore.local", Password: "secret123"}, false)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	_, data, _ := decodeEnvelope(t, w)
	var resp dto.AuthResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token.AccessToken != "access" || resp.Token.RefreshToken != "refresh" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.auth.login = func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
		return nil, apperrors.ErrInvalidCredentials
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "staff@campuscore.local", Password: "wrong-pass"}, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	_, _, errDetail := decodeEnvelope(t, w)
	if errDetail == nil || errDetail.Code != dto.ErrorCodeInvalidCredentials {
		t.Fatalf("body = %s, want AUTH_001", w.Body.String())
	}
}

func TestRegisterValidatesEmail(t *testing.T) {
	env := newTestEnv(t)
	env.auth.register = func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
		t.Fatal("service must not be called when binding fails")
		return nil, nil
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"email": "not-an-email", "password": "secret123", "fullName": "New Staff"}, false)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogoutRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/logout",
		dto.RefreshTokenRequest{RefreshToken: "some-refresh"}, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.logout = func(ctx context.Context, refreshToken string) error {
		if refreshToken != "some-refresh" {
			t.Errorf("refreshToken = %q", refreshToken)
		}
		return nil
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/logout",
		dto.RefreshTokenRequest{RefreshToken: "some-refresh"}, true)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	env := newTestEnv(t)
	env.auth.refresh = func(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
		return nil, apperrors.ErrTokenExpired
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/refresh",
		dto.RefreshTokenRequest{RefreshToken: "stale"}, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
