package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AnnouncementStore interface {
	GetAll(ctx context.Context) ([]*Announcement, error)
	Insert(ctx context.Context, announcement *Announcement) (*Announcement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
