package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
)

type ApartmentService struct {
	store  domain.ApartmentStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewApartmentService(store domain.ApartmentStore, tracer trace.Tracer, logger *logrus.Logger) *ApartmentService {
	return &ApartmentService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *ApartmentService) GetAll(ctx context.Context) ([]*domain.Apartment, error) {
	ctx, span := service.tracer.Start(ctx, "ApartmentService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}
