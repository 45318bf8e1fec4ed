package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
	errs "building_service/errors"
)

const AGREEMENTS_COLLECTION = "agreements"

type AgreementMongoDBStore struct {
	agreements *mongo.Collection
	tracer     trace.Tracer
}

func NewAgreementMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.AgreementStore {
	agreements := client.Database(DATABASE).Collection(AGREEMENTS_COLLECTION)

	// One agreement per tenant email, enforced by the store so concurrent
	// submissions cannot both pass the existence check.
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = agreements.Indexes().CreateOne(context.TODO(), indexModel)

	return &AgreementMongoDBStore{
		agreements: agreements,
		tracer:     tracer,
	}
}

func (store *AgreementMongoDBStore) Insert(ctx context.Context, agreement *domain.Agreement) (*domain.Agreement, error) {
	ctx, span := store.tracer.Start(ctx, "AgreementMongoDBStore.Insert")
	defer span.End()

	agreement.ID = primitive.NewObjectID()
	result, err := store.agreements.InsertOne(ctx, agreement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.New(errs.AgreementExists)
		}
		return nil, err
	}
	agreement.ID = result.InsertedID.(primitive.ObjectID)
	return agreement, nil
}

func (store *AgreementMongoDBStore) GetAll(ctx context.Context) ([]*domain.Agreement, error) {
	ctx, span := store.tracer.Start(ctx, "AgreementMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *AgreementMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	ctx, span := store.tracer.Start(ctx, "AgreementMongoDBStore.GetByEmail")
	defer span.End()

	filter := bson.M{"userEmail": email}
	return store.filterOne(ctx, filter)
}

func (store *AgreementMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Agreement, error) {
	cursor, err := store.agreements.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeAgreements(ctx, cursor)
}

func (store *AgreementMongoDBStore) filterOne(ctx context.Context, filter interface{}) (agreement *domain.Agreement, err error) {
	result := store.agreements.FindOne(ctx, filter)
	err = result.Decode(&agreement)
	return
}

func decodeAgreements(ctx context.Context, cursor *mongo.Cursor) (agreements []*domain.Agreement, err error) {
	for cursor.Next(ctx) {
		var agreement domain.Agreement
		err = cursor.Decode(&agreement)
		if err != nil {
			return
		}
		agreements = append(agreements, &agreement)
	}
	err = cursor.Err()
	return
}
