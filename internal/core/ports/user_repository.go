package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

// UserRepository is the credential store: it owns identity records and
// nothing else. Email uniqueness is enforced here at creation time.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRefreshToken replaces the stored refresh token unconditionally
	// (last writer wins).
	UpdateRefreshToken(ctx context.Context, id, refreshToken string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
}
