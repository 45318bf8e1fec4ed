package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
	errs "building_service/errors"
)

const ANNOUNCEMENTS_COLLECTION = "announcements"

type AnnouncementMongoDBStore struct {
	announcements *mongo.Collection
	tracer        trace.Tracer
}

func NewAnnouncementMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.AnnouncementStore {
	announcements := client.Database(DATABASE).Collection(ANNOUNCEMENTS_COLLECTION)
	return &AnnouncementMongoDBStore{
		announcements: announcements,
		tracer:        tracer,
	}
}

func (store *AnnouncementMongoDBStore) Insert(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	ctx, span := store.tracer.Start(ctx, "AnnouncementMongoDBStore.Insert")
	defer span.End()

	announcement.ID = primitive.NewObjectID()
	result, err := store.announcements.InsertOne(ctx, announcement)
	if err != nil {
		return nil, err
	}
	announcement.ID = result.InsertedID.(primitive.ObjectID)
	return announcement, nil
}

func (store *AnnouncementMongoDBStore) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	ctx, span := store.tracer.Start(ctx, "AnnouncementMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	cursor, err := store.announcements.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeAnnouncements(ctx, cursor)
}

func (store *AnnouncementMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "AnnouncementMongoDBStore.Delete")
	defer span.End()

	filter := bson.M{"_id": id}
	result, err := store.announcements.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errors.New(errs.AnnouncementNotFound)
	}

	return nil
}

func decodeAnnouncements(ctx context.Context, cursor *mongo.Cursor) (announcements []*domain.Announcement, err error) {
	for cursor.Next(ctx) {
		var announcement domain.Announcement
		err = cursor.Decode(&announcement)
		if err != nil {
			return
		}
		announcements = append(announcements, &announcement)
	}
	err = cursor.Err()
	return
}
