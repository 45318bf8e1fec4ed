package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"building_service/domain"
	errs "building_service/errors"
	application "building_service/service"
)

type AgreementHandler struct {
	service *application.AgreementService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

type CreateAgreementResponse struct {
	Message     string             `json:"message"`
	AgreementID primitive.ObjectID `json:"agreementId"`
}

func NewAgreementHandler(service *application.AgreementService, tracer trace.Tracer, logger *logrus.Logger) *AgreementHandler {
	return &AgreementHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *AgreementHandler) Init(router *mux.Router) {
	router.HandleFunc("/agreements", handler.GetAll).Methods("GET")
	router.HandleFunc("/agreements", handler.Create).Methods("POST")
}

func (handler *AgreementHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AgreementHandler.GetAll")
	defer span.End()

	agreements, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error fetching agreements: ", err)
		jsonError("Failed to fetch agreements", http.StatusInternalServerError, writer)
		return
	}
	jsonResponse(agreements, writer)
}

func (handler *AgreementHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AgreementHandler.Create")
	defer span.End()

	var agreement domain.Agreement
	err := json.NewDecoder(req.Body).Decode(&agreement)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.InvalidRequestFormatError, http.StatusBadRequest, writer)
		return
	}

	if err := agreement.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.MissingRequiredFields, http.StatusBadRequest, writer)
		return
	}

	saved, err := handler.service.Create(ctx, &agreement)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if err.Error() == errs.AgreementExists {
			jsonError(err.Error(), http.StatusConflict, writer)
			return
		}
		handler.logger.Error("Error submitting agreement: ", err)
		jsonError("Failed to submit agreement", http.StatusInternalServerError, writer)
		return
	}

	writer.WriteHeader(http.StatusCreated)
	jsonResponse(CreateAgreementResponse{
		Message:     "Agreement submitted successfully",
		AgreementID: saved.ID,
	}, writer)
}
