package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
)

type captureSink struct {
	entries []domain.Activity
}

func (c *captureSink) Enqueue(a domain.Activity) {
	c.entries = append(c.entries, a)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Admin-made", Email: "made@example.com", Password: "pass", Role: domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "pass" {
		t.Fatalf("password stored in plaintext")
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestUserService_AssignRole_Success(t *testing.T) {
	repo := newStubUserRepo()
	sink := &captureSink{}
	svc := NewUserService(repo, sink, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ivy", Email: "ivy@example.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.AssignRole(context.Background(), created.ID, "Admin")
	if err != nil {
		t.Fatalf("AssignRole returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected Admin, got %s", updated.Role)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("role not persisted")
	}

	if len(sink.entries) != 1 || sink.entries[0].Kind != domain.ActivityRoleChange {
		t.Fatalf("expected one role_change activity, got %+v", sink.entries)
	}
}

func TestUserService_AssignRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Jan", Email: "jan@example.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.AssignRole(context.Background(), created.ID, "Root"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_AssignRole_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	if _, err := svc.AssignRole(context.Background(), "missing", "Admin"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
