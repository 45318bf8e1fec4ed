package domain

import "context"

type AgreementStore interface {
	GetAll(ctx context.Context) ([]*Agreement, error)
	GetByEmail(ctx context.Context, email string) (*Agreement, error)
	Insert(ctx context.Context, agreement *Agreement) (*Agreement, error)
}
