package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

func rbacContext(t *testing.T, user *domain.User) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}
	return c
}

func TestRBAC_AllowedRole(t *testing.T) {
	c := rbacContext(t, &domain.User{ID: "u1", Role: domain.RoleManager})

	called := false
	handler := RBAC(domain.RoleAdmin, domain.RoleManager)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRBAC_DisallowedRole_VerboseMessage(t *testing.T) {
	c := rbacContext(t, &domain.User{ID: "u1", Role: domain.RoleClient})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	msg, _ := he.Message.(string)
	if !strings.Contains(msg, "Admin") || !strings.Contains(msg, "Client") {
		t.Fatalf("denial must name required and actual roles, got %q", msg)
	}
}

func TestRBAC_EmptySetAllowsAnyAuthenticated(t *testing.T) {
	c := rbacContext(t, &domain.User{ID: "u1", Role: domain.RoleClient})

	called := false
	handler := RBAC()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRBAC_NoUser(t *testing.T) {
	c := rbacContext(t, nil)

	handler := RBAC()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without an authenticated user, got %v", err)
	}
}

func TestRBAC_UnknownRole(t *testing.T) {
	c := rbacContext(t, &domain.User{ID: "u1", Role: "Superuser"})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown role, got %v", err)
	}
}
