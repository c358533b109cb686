package repository

import (
	"context"

	"github.com/navstation/navstation/internal/domain/entity"
)

// LinkRepository is CRUD over bookmark records, always scoped by owner.
type LinkRepository interface {
	// ListByOwner returns the owner's links in insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Link, error)
	// Create inserts the link and fills in the assigned ID.
	Create(ctx context.Context, l *entity.Link) error
	// DeleteOwned deletes the link only if it belongs to ownerID, in a single
	// conditional statement. Returns ErrNotFound when no row matched.
	DeleteOwned(ctx context.Context, ownerID, linkID int64) error
}
