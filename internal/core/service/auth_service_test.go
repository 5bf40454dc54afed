package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
	"github.com/shopcore/commerce-api/internal/pkg/password"
	"github.com/shopcore/commerce-api/internal/pkg/token"
)

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) UpdateRefreshToken(_ context.Context, id, refreshToken string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthService(repo, issuer, nil, zerolog.Nop())
}

func TestAuthService_SignUp_DefaultsToClient(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected default role Client, got %s", user.Role)
	}
	if user.PasswordHash == "pass" {
		t.Fatalf("password stored in plaintext")
	}
	if !password.Verify("pass", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_SignUp_ExplicitRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Bob", Email: "bob@example.com", Password: "pass", Role: domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected Manager, got %s", user.Role)
	}
}

func TestAuthService_SignUp_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Eve", Email: "eve@example.com", Password: "pass", Role: "Superuser",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "A", Email: "dup@example.com", Password: "pass",
	}); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "B", Email: "dup@example.com", Password: "other",
	}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if users, _ := repo.FindAll(context.Background()); len(users) != 1 {
		t.Fatalf("expected exactly one record for the email, got %d", len(users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	pair, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.RefreshToken != pair.RefreshToken {
		t.Fatalf("stored refresh token does not match the issued one")
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, noSuchUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noSuchUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
	if wrongPass.Error() != noSuchUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, noSuchUser)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := newStubUserRepo()
	issuer := token.NewIssuer("test-secret", time.Hour)
	svc := NewAuthService(repo, issuer, nil, zerolog.Nop())

	created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Erin", Email: "erin@example.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	pair, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	access, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	claims, err := issuer.Verify(access)
	if err != nil {
		t.Fatalf("new access token invalid: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("access token carries wrong identity: %s", claims.UserID)
	}
}

func TestAuthService_Refresh_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Frank", Email: "frank@example.com", Password: "pass",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	pair, err := svc.Login(context.Background(), "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("first Refresh failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("second Refresh failed: refresh must not consume the token: %v", err)
	}
}

func TestAuthService_Refresh_SupersededByNewLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Grace", Email: "grace@example.com", Password: "pass",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	first, err := svc.Login(context.Background(), "grace@example.com", "pass")
	if err != nil {
		t.Fatalf("first Login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "grace@example.com", "pass"); err != nil {
		t.Fatalf("second Login failed: %v", err)
	}

	// The first refresh token still verifies cryptographically, but the
	// stored copy now belongs to the second session.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for superseded token, got %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Heidi", Email: "heidi@example.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	pair, err := svc.Login(context.Background(), "heidi@example.com", "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for deleted user, got %v", err)
	}
}
