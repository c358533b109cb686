package application

import (
	"context"
	"sync"

	"github.com/navstation/navstation/internal/domain/entity"
	"github.com/navstation/navstation/internal/domain/repository"
)

// memUserRepo mimics the store contract, including unique-constraint conflict
// detection at insert time.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*entity.User

	createErr error // forced failure, when set
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byName: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byName[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byName[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// memLinkRepo mimics the link store, counting Create calls so tests can prove
// validation happens before persistence.
type memLinkRepo struct {
	mu          sync.Mutex
	nextID      int64
	links       []entity.Link
	createCalls int
}

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{}
}

func (r *memLinkRepo) ListByOwner(_ context.Context, ownerID int64) ([]entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Link, 0)
	for _, l := range r.links {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLinkRepo) Create(_ context.Context, l *entity.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.nextID++
	l.ID = r.nextID
	r.links = append(r.links, *l)
	return nil
}

func (r *memLinkRepo) DeleteOwned(_ context.Context, ownerID, linkID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.links {
		if l.ID == linkID && l.OwnerID == ownerID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var (
	_ repository.UserRepository = (*memUserRepo)(nil)
	_ repository.LinkRepository = (*memLinkRepo)(nil)
)
