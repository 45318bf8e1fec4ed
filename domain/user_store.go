package domain

import "context"

type UserStore interface {
	GetAll(ctx context.Context) ([]*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAdmins(ctx context.Context) ([]*User, error)
	Insert(ctx context.Context, user *User) (*User, error)
}
