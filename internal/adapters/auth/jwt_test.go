package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/auth"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func TestJWT_IssueParseRoundTrip(t *testing.T) {
	pid := int64(7)
	j, err := auth.NewJWT("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	tok, exp, err := j.Issue(domain.User{ID: 42, Username: "ada", Role: "manager", PropertyID: &pid})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry in the past: %v", exp)
	}

	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "ada" || claims.Role != "manager" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.PropertyID == nil || *claims.PropertyID != 7 {
		t.Fatalf("property id not carried: %+v", claims.PropertyID)
	}
}

func TestJWT_RejectsExpired(t *testing.T) {
	j, _ := auth.NewJWT("test-secret", time.Hour)

	// sign a token that expired an hour ago with the same secret
	past := time.Now().Add(-time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(past),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := j.Parse(tok); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expired token should be rejected, got %v", err)
	}
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	a, _ := auth.NewJWT("secret-a", time.Hour)
	b, _ := auth.NewJWT("secret-b", time.Hour)

	tok, _, err := a.Issue(domain.User{ID: 1, Username: "ada"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := b.Parse(tok); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("token signed with another secret should be rejected, got %v", err)
	}
}

func TestJWT_RejectsGarbage(t *testing.T) {
	j, _ := auth.NewJWT("test-secret", time.Hour)
	if _, err := j.Parse("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("garbage should be rejected, got %v", err)
	}
}

func TestNewJWT_RequiresSecret(t *testing.T) {
	if _, err := auth.NewJWT("", time.Hour); err == nil {
		t.Fatalf("empty secret should fail")
	}
}
