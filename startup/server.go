package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casbin/casbin"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"building_service/authorization"
	"building_service/casbinAuthorization"
	"building_service/domain"
	"building_service/handlers"
	application "building_service/service"
	"building_service/startup/config"
	"building_service/store"
)

const ServiceName = "building_service"

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := fmt.Sprintf("[%s] [%s] [%s] %s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		entry.Level,
		uuid.NewString(),
		entry.Message,
	)

	return []byte(msg), nil
}

func initLogger(logFilePath string) {
	Logger.SetFormatter(&CustomFormatter{})

	if logFilePath == "" {
		Logger.SetOutput(os.Stdout)
		return
	}

	writer, err := rotatelogs.New(
		logFilePath+"_%Y%m%d%H%M",
		rotatelogs.WithRotationTime(15*time.Minute),
	)
	if err != nil {
		Logger.Fatalf("Failed to create rotatelogs hook: %v", err)
	}
	Logger.SetOutput(writer)
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store.GetClientWithHTTPConfig(server.config.BuildingDBHost, server.config.BuildingDBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initApartmentStore(client *mongo.Client, tracer trace.Tracer) domain.ApartmentStore {
	return store.NewApartmentMongoDBStore(client, tracer)
}

func (server *Server) initAgreementStore(client *mongo.Client, tracer trace.Tracer) domain.AgreementStore {
	return store.NewAgreementMongoDBStore(client, tracer)
}

func (server *Server) initUserStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	return store.NewUserMongoDBStore(client, tracer)
}

func (server *Server) initAnnouncementStore(client *mongo.Client, tracer trace.Tracer) domain.AnnouncementStore {
	return store.NewAnnouncementMongoDBStore(client, tracer)
}

func (server *Server) Start() {
	initLogger(server.config.LogFilePath)

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			Logger.Error("Error disconnecting mongo client: ", err)
		}
	}(mongoClient, context.Background())

	// A failed ping is not fatal; every request fails independently until
	// the store comes back.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx, mongoClient); err != nil {
		Logger.Error("Error connecting to MongoDB: ", err)
	} else {
		Logger.Info("Connected to MongoDB")
	}
	cancelPing()

	ctx := context.Background()
	tracer, shutdownTracer := server.initTracer()
	defer shutdownTracer(ctx)

	verifier, err := authorization.NewVerifier([]byte(server.config.SecretKey))
	if err != nil {
		log.Fatal(err)
	}

	mailer := application.NewMailer(server.config.SMTPHost, server.config.SMTPPort, server.config.SMTPEmail, server.config.SMTPPassword)

	apartmentStore := server.initApartmentStore(mongoClient, tracer)
	agreementStore := server.initAgreementStore(mongoClient, tracer)
	userStore := server.initUserStore(mongoClient, tracer)
	announcementStore := server.initAnnouncementStore(mongoClient, tracer)

	apartmentService := application.NewApartmentService(apartmentStore, tracer, Logger)
	agreementService := application.NewAgreementService(agreementStore, tracer, Logger)
	userService := application.NewUserService(userStore, tracer, Logger)
	announcementService := application.NewAnnouncementService(announcementStore, userStore, mailer, tracer, Logger)

	apartmentHandler := handlers.NewApartmentHandler(apartmentService, tracer, Logger)
	agreementHandler := handlers.NewAgreementHandler(agreementService, tracer, Logger)
	userHandler := handlers.NewUserHandler(userService, verifier, tracer, Logger)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, tracer, Logger)

	server.start(apartmentHandler, agreementHandler, userHandler, announcementHandler)
}

func (server *Server) initTracer() (trace.Tracer, func(ctx context.Context)) {
	if server.config.JaegerAddress == "" {
		return trace.NewNoopTracerProvider().Tracer(ServiceName), func(ctx context.Context) {}
	}

	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Tracer(ServiceName), func(ctx context.Context) { _ = tp.Shutdown(ctx) }
}

func (server *Server) start(apartmentHandler *handlers.ApartmentHandler, agreementHandler *handlers.AgreementHandler, userHandler *handlers.UserHandler, announcementHandler *handlers.AnnouncementHandler) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(handlers.ExtractTraceInfoMiddleware)

	router.HandleFunc("/", handlers.Root).Methods("GET")
	apartmentHandler.Init(router)
	agreementHandler.Init(router)
	userHandler.Init(router)
	announcementHandler.Init(router)

	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal(err)
	}
	Logger.Info("Successful init of casbin enforcer")

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: casbinAuthorization.CasbinMiddleware(enforcer, Logger)(router),
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(ServiceName),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}
