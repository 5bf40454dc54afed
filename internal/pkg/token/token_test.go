package token

import (
	"errors"
	"testing"
	"time"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "64f1a2b3c4d5e6f7a8b9c0d1",
		Email: "alice@example.com",
		Role:  domain.RoleManager,
	}
}

func TestIssueAccess_Roundtrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestIssueRefresh_Roundtrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.IssueRefresh(testUser(), LoginRefreshTTL)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}
	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if remaining := time.Until(claims.ExpiresAt.Time); remaining < 6*24*time.Hour {
		t.Fatalf("refresh token expires too soon: %v", remaining)
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.IssueRefresh(testUser(), -time.Minute)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}
	if _, err := issuer.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	raw, err := issuer.IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	if _, err := other.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestRefreshPolicies_Distinct(t *testing.T) {
	if LoginRefreshTTL == SignUpRefreshTTL {
		t.Fatalf("login and sign-up refresh lifetimes must remain distinct policies")
	}
}
