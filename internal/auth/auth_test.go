// File path: internal/auth/auth_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/nicodishanthj/mopgen/internal/sqlite"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "mopgen.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewService(store)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	result, err := service.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("empty token")
	}
	if result.User.Username != "admin" {
		t.Fatalf("user = %+v", result.User)
	}

	userID, err := service.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "admin" {
		t.Fatalf("userID = %q", userID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	if _, err := service.Login(ctx, "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Login(ctx, "nobody", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	service := newService(t)
	if _, err := service.Verify("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestMiddlewareSetsIdentity(t *testing.T) {
	service := newService(t)
	result, err := service.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	var got string
	handler := service.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Identity(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != "admin" {
		t.Fatalf("identity = %q", got)
	}

	// No token: anonymous requests default to admin.
	got = ""
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != "admin" {
		t.Fatalf("default identity = %q", got)
	}

	// A bad token is ignored rather than failing the request.
	got = ""
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != "admin" {
		t.Fatalf("identity with bad token = %q", got)
	}
}
