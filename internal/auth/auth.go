// File path: internal/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
)

// ErrInvalidCredentials is returned by Login when the username or password
// does not match. It maps to 401 at the API layer.
var ErrInvalidCredentials = errors.New("invalid credentials")

// tokenTTL bounds how long an issued login token stays valid.
const tokenTTL = time.Hour

type contextKey struct{}

// Service issues and verifies login tokens against the user table.
type Service struct {
	store  *sqlite.Store
	secret []byte
}

// NewService builds the auth service. The signing secret comes from
// JWT_SECRET, falling back to a development default.
func NewService(store *sqlite.Store) *Service {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "secret_key"
	}
	return &Service{store: store, secret: []byte(secret)}
}

// LoginResult is the login response payload.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login verifies the password against its bcrypt hash and issues a signed
// token. Unknown users and wrong passwords are indistinguishable to callers.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, common.InvalidInputf("username and password required")
	}
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"userId": user.Username,
		"exp":    time.Now().Add(tokenTTL).Unix(),
		"iat":    time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Token: token, User: user}, nil
}

// Verify parses a bearer token and returns the identity it carries.
func (s *Service) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	userID, _ := claims["userId"].(string)
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("token missing userId claim")
	}
	return userID, nil
}

// Middleware populates the request identity from an Authorization bearer
// token when one is present and valid. Requests without a usable token pass
// through anonymously; handlers fall back to the default identity.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if strings.HasPrefix(header, "Bearer ") {
			if userID, err := s.Verify(strings.TrimPrefix(header, "Bearer ")); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), contextKey{}, userID))
			} else {
				common.Logger().Debug("rejected bearer token", "error", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Identity returns the authenticated user for the request, defaulting to
// "admin" when none was established.
func Identity(ctx context.Context) string {
	if userID, ok := ctx.Value(contextKey{}).(string); ok && userID != "" {
		return userID
	}
	return "admin"
}
