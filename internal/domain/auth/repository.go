package auth

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}
