package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stafftrack/stafftrack-go/internal/domain/auth"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
)

type userRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) auth.Repository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]auth.User, error) {
	var users []auth.User
	if err := loadCollection(ctx, r.store, collectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return auth.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user auth.User) (auth.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return auth.User{}, err
	}

	if user.ID == "" {
		user.ID = "usr-" + uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	users = append(users, user)
	if err := saveCollection(ctx, r.store, collectionUsers, users); err != nil {
		return auth.User{}, err
	}
	return user, nil
}
