package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/edupanel/campuscore/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campuscore-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Email: "staff@campuscore.local", Role: models.RoleStaff}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token in pair")
	}
	if expiresIn != 3600 {
		t.Fatalf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Fatalf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != 42 || claims.Email != "staff@campuscore.local" || claims.Role != string(models.RoleStaff) {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Email: "a@b.c", Role: models.RoleStaff}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAndExtractClaims(access); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	svc := testService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campuscore-test",
	})

	access, _, _, _, err := other.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleStaff})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAndExtractClaims(access); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("ExtractBearerToken() = %q, %v", token, err)
	}

	if _, err := ExtractBearerToken("abc.def.ghi"); err == nil {
		t.Fatal("missing Bearer prefix must fail")
	}
	if _, err := ExtractBearerToken(""); err == nil {
		t.Fatal("empty header must fail")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "secret123") {
		t.Fatal("CheckPassword() with correct password = false")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("CheckPassword() with wrong password = true")
	}
}
