package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(7, "华佗")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.DoctorID != 7 {
		t.Errorf("DoctorID = %d, want 7", claims.DoctorID)
	}
	if claims.DoctorName != "华佗" {
		t.Errorf("DoctorName = %q, want 华佗", claims.DoctorName)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(1, "x")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue(1, "x")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected error for token signed with a different key")
	}
}

func TestMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()

	handler := func(c echo.Context) error {
		if got := c.Get("doctor_id").(int); got != 3 {
			t.Errorf("doctor_id = %d, want 3", got)
		}
		return c.String(http.StatusOK, "ok")
	}
	h := Middleware(issuer)(handler)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		err := h(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		c := e.NewContext(req, httptest.NewRecorder())
		err := h(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := issuer.Issue(3, "doc")
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		c := e.NewContext(req, httptest.NewRecorder())
		if err := h(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
