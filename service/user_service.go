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

type UserService struct {
	store  domain.UserStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewUserService(store domain.UserStore, tracer trace.Tracer, logger *logrus.Logger) *UserService {
	return &UserService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.Create")
	defer span.End()

	existing, err := service.store.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		service.logger.Error("Error checking existing user: ", err)
		return nil, errors.New(errs.DatabaseError)
	}
	if existing != nil {
		return nil, errors.New(errs.UserExists)
	}

	user.CreatedAt = time.Now()

	saved, err := service.store.Insert(ctx, user)
	if err != nil {
		if err.Error() == errs.UserExists {
			return nil, err
		}
		service.logger.Error("Error inserting user: ", err)
		return nil, errors.New(errs.DatabaseError)
	}

	return saved, nil
}

// IsAdmin reports whether the user stored under email carries the admin role.
// A missing user or a missing role both mean false.
func (service *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.IsAdmin")
	defer span.End()

	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		service.logger.Error("Error looking up user: ", err)
		return false, errors.New(errs.DatabaseError)
	}

	return user.Role == domain.RoleAdmin, nil
}
