package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/store"
)

// UserRepository handles store operations for users. Lookup by email
// is platform-wide: login happens before a tenant is known.
type UserRepository struct {
	kv store.KV
}

// NewUserRepository creates a new user repository
func NewUserRepository(kv store.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

func (r *UserRepository) readAll(ctx context.Context) ([]*models.User, error) {
	payload, err := r.kv.Get(ctx, store.TableKey(store.TableUsers))
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var users []*models.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

// All returns every user on the platform.
func (r *UserRepository) All(ctx context.Context) ([]*models.User, error) {
	return r.readAll(ctx)
}

// Get returns one user by id, or nil when absent.
func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail returns one user by email, case-insensitively, or nil
// when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

// Save upserts the user by id.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, u := range users {
		if u.ID == user.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		users[idx] = user
	} else {
		users = append(users, user)
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.kv.Set(ctx, store.TableKey(store.TableUsers), payload); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}
