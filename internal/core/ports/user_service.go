package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserService covers the admin-only identity operations.
type UserService interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	AssignRole(ctx context.Context, userID, role string) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
