package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
	"github.com/shopcore/commerce-api/internal/pkg/password"
)

// UserService implements the admin-only identity operations: listing,
// admin-created accounts, role assignment, and deletion.
type UserService struct {
	users    ports.UserRepository
	activity ports.ActivitySink
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, activity ports.ActivitySink, logger zerolog.Logger) *UserService {
	return &UserService{users: users, activity: activity, logger: logger}
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Create registers a user on behalf of an administrator. The password goes
// through the same hasher as self-service sign-up.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created by admin")
	return created, nil
}

// AssignRole replaces the user's role after validating it against the
// closed role set.
func (s *UserService) AssignRole(ctx context.Context, userID, role string) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, userID, parsed); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("from", string(user.Role)).Str("to", string(parsed)).Msg("role assigned")
	if s.activity != nil {
		s.activity.Enqueue(domain.Activity{
			UserID: userID,
			Email:  user.Email,
			Kind:   domain.ActivityRoleChange,
			Detail: fmt.Sprintf("%s -> %s", user.Role, parsed),
			At:     time.Now().UTC(),
		})
	}

	user.Role = parsed
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
