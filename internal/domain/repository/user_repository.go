package repository

import (
	"context"
	"errors"

	"github.com/navstation/navstation/internal/domain/entity"
)

// ErrDuplicateUsername is returned by Create when the username is already
// taken. Detection happens at the store level (unique constraint), not via a
// pre-check, so concurrent registrations cannot race past it.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrNotFound is returned when a requested row does not exist, or — for
// owner-scoped operations — exists but belongs to someone else. The two cases
// are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// UserRepository persists username -> password-hash credentials.
type UserRepository interface {
	// Create inserts the user and fills in the assigned ID.
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
