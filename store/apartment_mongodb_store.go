package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
)

const APARTMENTS_COLLECTION = "apartments"

type ApartmentMongoDBStore struct {
	apartments *mongo.Collection
	tracer     trace.Tracer
}

func NewApartmentMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.ApartmentStore {
	apartments := client.Database(DATABASE).Collection(APARTMENTS_COLLECTION)
	return &ApartmentMongoDBStore{
		apartments: apartments,
		tracer:     tracer,
	}
}

func (store *ApartmentMongoDBStore) GetAll(ctx context.Context) ([]*domain.Apartment, error) {
	ctx, span := store.tracer.Start(ctx, "ApartmentMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	cursor, err := store.apartments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeApartments(ctx, cursor)
}

func decodeApartments(ctx context.Context, cursor *mongo.Cursor) (apartments []*domain.Apartment, err error) {
	for cursor.Next(ctx) {
		var apartment domain.Apartment
		err = cursor.Decode(&apartment)
		if err != nil {
			return
		}
		apartments = append(apartments, &apartment)
	}
	err = cursor.Err()
	return
}
