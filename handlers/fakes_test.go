package handlers

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/cristalhq/jwt/v4"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"building_service/authorization"
	"building_service/domain"
	errs "building_service/errors"
	application "building_service/service"
)

var errStoreDown = errors.New("store down")

type fakeApartmentStore struct {
	mu         sync.Mutex
	apartments []*domain.Apartment
	failing    bool
}

func (store *fakeApartmentStore) GetAll(ctx context.Context) ([]*domain.Apartment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	return append([]*domain.Apartment{}, store.apartments...), nil
}

type fakeAgreementStore struct {
	mu         sync.Mutex
	agreements []*domain.Agreement
	failing    bool
}

func (store *fakeAgreementStore) GetAll(ctx context.Context) ([]*domain.Agreement, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	return append([]*domain.Agreement{}, store.agreements...), nil
}

func (store *fakeAgreementStore) GetByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	for _, agreement := range store.agreements {
		if agreement.UserEmail == email {
			return agreement, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (store *fakeAgreementStore) Insert(ctx context.Context, agreement *domain.Agreement) (*domain.Agreement, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	for _, existing := range store.agreements {
		if existing.UserEmail == agreement.UserEmail {
			return nil, errors.New(errs.AgreementExists)
		}
	}
	agreement.ID = primitive.NewObjectID()
	store.agreements = append(store.agreements, agreement)
	return agreement, nil
}

type fakeUserStore struct {
	mu      sync.Mutex
	users   []*domain.User
	failing bool
}

func (store *fakeUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	return append([]*domain.User{}, store.users...), nil
}

func (store *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	for _, user := range store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (store *fakeUserStore) GetAdmins(ctx context.Context) ([]*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	var admins []*domain.User
	for _, user := range store.users {
		if user.Role == domain.RoleAdmin {
			admins = append(admins, user)
		}
	}
	return admins, nil
}

func (store *fakeUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	for _, existing := range store.users {
		if existing.Email == user.Email {
			return nil, errors.New(errs.UserExists)
		}
	}
	user.ID = primitive.NewObjectID()
	store.users = append(store.users, user)
	return user, nil
}

type fakeAnnouncementStore struct {
	mu            sync.Mutex
	announcements []*domain.Announcement
	failing       bool
}

func (store *fakeAnnouncementStore) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	return append([]*domain.Announcement{}, store.announcements...), nil
}

func (store *fakeAnnouncementStore) Insert(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return nil, errStoreDown
	}
	announcement.ID = primitive.NewObjectID()
	store.announcements = append(store.announcements, announcement)
	return announcement, nil
}

func (store *fakeAnnouncementStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failing {
		return errStoreDown
	}
	for i, announcement := range store.announcements {
		if announcement.ID == id {
			store.announcements = append(store.announcements[:i], store.announcements[i+1:]...)
			return nil
		}
	}
	return errors.New(errs.AnnouncementNotFound)
}

var testSecretKey = []byte("test-secret-key")

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type testEnv struct {
	router        *mux.Router
	apartments    *fakeApartmentStore
	agreements    *fakeAgreementStore
	users         *fakeUserStore
	announcements *fakeAnnouncementStore
}

func newTestEnv() *testEnv {
	tracer := testTracer()
	logger := testLogger()

	apartments := &fakeApartmentStore{}
	agreements := &fakeAgreementStore{}
	users := &fakeUserStore{}
	announcements := &fakeAnnouncementStore{}

	verifier, err := authorization.NewVerifier(testSecretKey)
	if err != nil {
		panic(err)
	}

	apartmentService := application.NewApartmentService(apartments, tracer, logger)
	agreementService := application.NewAgreementService(agreements, tracer, logger)
	userService := application.NewUserService(users, tracer, logger)
	announcementService := application.NewAnnouncementService(announcements, users, nil, tracer, logger)

	router := mux.NewRouter()
	router.HandleFunc("/", Root).Methods("GET")
	NewApartmentHandler(apartmentService, tracer, logger).Init(router)
	NewAgreementHandler(agreementService, tracer, logger).Init(router)
	NewUserHandler(userService, verifier, tracer, logger).Init(router)
	NewAnnouncementHandler(announcementService, tracer, logger).Init(router)

	return &testEnv{
		router:        router,
		apartments:    apartments,
		agreements:    agreements,
		users:         users,
		announcements: announcements,
	}
}

func signTestToken(claims map[string]string) string {
	signer, err := jwt.NewSignerHS(jwt.HS256, testSecretKey)
	if err != nil {
		panic(err)
	}
	token, err := jwt.NewBuilder(signer).Build(claims)
	if err != nil {
		panic(err)
	}
	return token.String()
}
