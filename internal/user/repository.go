package user

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository is the document store for users. Lookups that match
// nothing return ErrNotFound; callers decide whether that is a fault or
// a null result.
type Repository interface {
	InsertOne(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{users: make([]User, 0, len(seed))}
	repo.users = append(repo.users, seed...)
	return repo
}

// InsertOne appends the document. No uniqueness check on the email;
// identifiers are generated and assumed unique.
func (r *InMemoryRepository) InsertOne(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u)
	return nil
}

func (r *InMemoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email.Current == email {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users
}
