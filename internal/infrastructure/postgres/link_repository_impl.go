package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navstation/navstation/internal/domain/entity"
	"github.com/navstation/navstation/internal/domain/repository"
)

type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Link, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, url
		FROM links
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]entity.Link, 0)
	for rows.Next() {
		var l entity.Link
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Name, &l.URL); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *LinkRepository) Create(ctx context.Context, l *entity.Link) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO links (user_id, name, url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, l.OwnerID, l.Name, l.URL)
	return row.Scan(&l.ID)
}

// DeleteOwned is the single statement that enforces ownership: the owner_id
// predicate and the delete are one atomic operation, so guessing another
// user's link id can never remove it.
func (r *LinkRepository) DeleteOwned(ctx context.Context, ownerID, linkID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM links
		WHERE id = $1 AND user_id = $2
	`, linkID, ownerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.LinkRepository = (*LinkRepository)(nil)
