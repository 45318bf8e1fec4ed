package domain

import "context"

type ApartmentStore interface {
	GetAll(ctx context.Context) ([]*Apartment, error)
}
