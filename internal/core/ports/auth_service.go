package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type SignUpInput struct {
	Name     string
	Email    string
	Password string
	// Role is optional; empty defaults to Client.
	Role domain.Role
}

// TokenPair is what a successful login returns: a short-lived access token
// and the refresh token that can mint new ones.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	// SignUp creates the identity but issues no tokens; the caller must log in.
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh mints a new access token. The presented refresh token must both
	// verify cryptographically and match the stored copy exactly.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
