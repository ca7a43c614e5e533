package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when an account lookup finds nothing.
var ErrUserNotFound = errors.New("user not found")

// Repository is the persistence port for accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, dbID uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListMentors(ctx context.Context) ([]*User, error)
}
