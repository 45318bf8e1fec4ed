package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
	errs "building_service/errors"
)

type AgreementService struct {
	store  domain.AgreementStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewAgreementService(store domain.AgreementStore, tracer trace.Tracer, logger *logrus.Logger) *AgreementService {
	return &AgreementService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *AgreementService) GetAll(ctx context.Context) ([]*domain.Agreement, error) {
	ctx, span := service.tracer.Start(ctx, "AgreementService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

// Create stores a new agreement after checking that no agreement exists for
// the tenant email. The unique index on userEmail backs this check up, so a
// concurrent duplicate submission still comes back as a conflict.
func (service *AgreementService) Create(ctx context.Context, agreement *domain.Agreement) (*domain.Agreement, error) {
	ctx, span := service.tracer.Start(ctx, "AgreementService.Create")
	defer span.End()

	existing, err := service.store.GetByEmail(ctx, agreement.UserEmail)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		service.logger.Error("Error checking existing agreement: ", err)
		return nil, errors.New(errs.DatabaseError)
	}
	if existing != nil {
		return nil, errors.New(errs.AgreementExists)
	}

	if agreement.Status == "" {
		agreement.Status = domain.StatusPending
	}
	agreement.CreatedAt = time.Now()

	saved, err := service.store.Insert(ctx, agreement)
	if err != nil {
		if err.Error() == errs.AgreementExists {
			return nil, err
		}
		service.logger.Error("Error inserting agreement: ", err)
		return nil, errors.New(errs.DatabaseError)
	}

	return saved, nil
}
