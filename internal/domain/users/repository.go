package users

import "context"

// Repository is the storage contract for user accounts. GetByEmail and
// GetByID return ErrNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, user User) (User, error)
}
