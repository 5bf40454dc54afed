package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/api/metrics"
	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
	"github.com/shopcore/commerce-api/internal/pkg/password"
	"github.com/shopcore/commerce-api/internal/pkg/token"
)

// AuthService orchestrates sign-up, login, and refresh on top of the
// credential store, the password hasher, and the token issuer.
type AuthService struct {
	users    ports.UserRepository
	issuer   *token.Issuer
	activity ports.ActivitySink
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, activity ports.ActivitySink, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, activity: activity, logger: logger}
}

// SignUp hashes the password and creates the identity. No tokens are issued
// here: the account must log in to obtain a session.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
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
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignUpsTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	s.record(created, domain.ActivitySignUp, "")

	return created, nil
}

// Login verifies credentials and issues a fresh access/refresh pair. A
// missing account and a wrong password surface the same error so callers
// cannot probe which factor failed. The new refresh token overwrites the
// stored one, revoking any previously issued refresh token.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(pass, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.IssueRefresh(user, token.LoginRefreshTTL)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	s.record(user, domain.ActivityLogin, "")

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a refresh token for a new access token. The presented
// token must verify and match the stored copy byte for byte; the stored
// comparison is what makes a superseded token unusable even while its own
// signature and expiry are still good. The refresh token is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidRefreshToken
	}

	if user.RefreshToken != refreshToken {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.issuer.IssueAccess(user)
	if err != nil {
		return "", err
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	s.record(user, domain.ActivityRefresh, "")

	return accessToken, nil
}

func (s *AuthService) record(user *domain.User, kind domain.ActivityKind, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(domain.Activity{
		UserID: user.ID,
		Email:  user.Email,
		Kind:   kind,
		Detail: detail,
		At:     time.Now().UTC(),
	})
}
