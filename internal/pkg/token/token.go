// Package token issues and verifies the signed bearer tokens used by the
// auth subsystem. The signing secret is injected at construction; rotating
// it invalidates every outstanding token.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

const defaultAccessTTL = time.Hour

// The two refresh lifetimes the service has historically used. They are
// deliberately kept as separate named policies: login-issued refresh tokens
// live 7 days, sign-up-issued ones 10 days.
const (
	LoginRefreshTTL  = 7 * 24 * time.Hour
	SignUpRefreshTTL = 10 * 24 * time.Hour
)

// Claims is the signed claim set carried by both access and refresh tokens.
type Claims struct {
	UserID string      `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide HS256 secret.
type Issuer struct {
	secret    []byte
	accessTTL time.Duration
}

func NewIssuer(secret string, accessTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	return &Issuer{secret: []byte(secret), accessTTL: accessTTL}
}

// IssueAccess signs a short-lived access token for the given user.
func (i *Issuer) IssueAccess(user *domain.User) (string, error) {
	return i.sign(user, i.accessTTL)
}

// IssueRefresh signs a refresh token with the given lifetime policy
// (LoginRefreshTTL or SignUpRefreshTTL).
func (i *Issuer) IssueRefresh(user *domain.User, ttl time.Duration) (string, error) {
	return i.sign(user, ttl)
}

func (i *Issuer) sign(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry. Malformed, tampered, mis-signed, and
// expired tokens all collapse to domain.ErrInvalidToken; callers never learn
// which check failed.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
