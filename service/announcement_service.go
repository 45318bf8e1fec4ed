package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
)

type AnnouncementService struct {
	store  domain.AnnouncementStore
	users  domain.UserStore
	mailer *Mailer
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewAnnouncementService(store domain.AnnouncementStore, users domain.UserStore, mailer *Mailer, tracer trace.Tracer, logger *logrus.Logger) *AnnouncementService {
	return &AnnouncementService{
		store:  store,
		users:  users,
		mailer: mailer,
		tracer: tracer,
		logger: logger,
	}
}

func (service *AnnouncementService) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	ctx, span := service.tracer.Start(ctx, "AnnouncementService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *AnnouncementService) Create(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	ctx, span := service.tracer.Start(ctx, "AnnouncementService.Create")
	defer span.End()

	announcement.CreatedAt = time.Now()

	saved, err := service.store.Insert(ctx, announcement)
	if err != nil {
		return nil, err
	}

	// Mail failures never undo the stored announcement.
	service.broadcastToAdmins(ctx, saved)

	return saved, nil
}

func (service *AnnouncementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "AnnouncementService.Delete")
	defer span.End()

	return service.store.Delete(ctx, id)
}

func (service *AnnouncementService) broadcastToAdmins(ctx context.Context, announcement *domain.Announcement) {
	if service.mailer == nil {
		return
	}

	admins, err := service.users.GetAdmins(ctx)
	if err != nil {
		service.logger.Error("Error fetching admins for announcement mail: ", err)
		return
	}

	recipients := make([]string, 0, len(admins))
	for _, admin := range admins {
		recipients = append(recipients, admin.Email)
	}

	if err := service.mailer.SendAnnouncement(announcement.Title, announcement.Description, recipients); err != nil {
		service.logger.Error("Failed to send announcement mail: ", err)
	}
}
