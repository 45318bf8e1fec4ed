package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	application "building_service/service"
)

type ApartmentHandler struct {
	service *application.ApartmentService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewApartmentHandler(service *application.ApartmentService, tracer trace.Tracer, logger *logrus.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *ApartmentHandler) Init(router *mux.Router) {
	router.HandleFunc("/apartments", handler.GetAll).Methods("GET")
}

func (handler *ApartmentHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "ApartmentHandler.GetAll")
	defer span.End()

	apartments, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error fetching apartments: ", err)
		jsonError("Failed to fetch apartments", http.StatusInternalServerError, writer)
		return
	}
	jsonResponse(apartments, writer)
}
