// File path: internal/sqlite/users.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
)

// UserByUsername retrieves a user account for login.
func (s *Store) UserByUsername(ctx context.Context, username string) (model.User, error) {
	if s == nil || s.db == nil {
		return model.User{}, errors.New("sqlite store not initialised")
	}
	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = ?`, strings.TrimSpace(username))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, common.NotFoundf("user %s not found", username)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new account with an already-hashed password.
func (s *Store) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if s == nil || s.db == nil {
		return model.User{}, errors.New("sqlite store not initialised")
	}
	if strings.TrimSpace(user.Username) == "" {
		return model.User{}, common.InvalidInputf("username required")
	}
	if strings.TrimSpace(user.PasswordHash) == "" {
		return model.User{}, common.InvalidInputf("password hash required")
	}
	if strings.TrimSpace(user.ID) == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, user.Email, user.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}
