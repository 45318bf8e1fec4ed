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

type AnnouncementHandler struct {
	service *application.AnnouncementService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

type CreateAnnouncementResponse struct {
	Message        string             `json:"message"`
	AnnouncementID primitive.ObjectID `json:"announcementId"`
}

type DeleteAnnouncementResponse struct {
	Message string `json:"message"`
}

func NewAnnouncementHandler(service *application.AnnouncementService, tracer trace.Tracer, logger *logrus.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *AnnouncementHandler) Init(router *mux.Router) {
	router.HandleFunc("/announcements", handler.GetAll).Methods("GET")
	router.HandleFunc("/announcements", handler.Create).Methods("POST")
	router.HandleFunc("/announcements/{id}", handler.Delete).Methods("DELETE")
}

func (handler *AnnouncementHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AnnouncementHandler.GetAll")
	defer span.End()

	announcements, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error fetching announcements: ", err)
		jsonError("Failed to fetch announcements", http.StatusInternalServerError, writer)
		return
	}
	jsonResponse(announcements, writer)
}

func (handler *AnnouncementHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AnnouncementHandler.Create")
	defer span.End()

	var announcement domain.Announcement
	err := json.NewDecoder(req.Body).Decode(&announcement)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.InvalidRequestFormatError, http.StatusBadRequest, writer)
		return
	}

	if err := announcement.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.MissingRequiredFields, http.StatusBadRequest, writer)
		return
	}

	saved, err := handler.service.Create(ctx, &announcement)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error creating announcement: ", err)
		jsonError("Failed to create announcement", http.StatusInternalServerError, writer)
		return
	}

	writer.WriteHeader(http.StatusCreated)
	jsonResponse(CreateAnnouncementResponse{
		Message:        "Announcement created successfully",
		AnnouncementID: saved.ID,
	}, writer)
}

func (handler *AnnouncementHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AnnouncementHandler.Delete")
	defer span.End()

	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.InvalidAnnouncementID, http.StatusBadRequest, writer)
		return
	}

	err = handler.service.Delete(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if err.Error() == errs.AnnouncementNotFound {
			jsonError(err.Error(), http.StatusNotFound, writer)
			return
		}
		handler.logger.Error("Error deleting announcement: ", err)
		jsonError("Failed to delete announcement", http.StatusInternalServerError, writer)
		return
	}

	jsonResponse(DeleteAnnouncementResponse{Message: "Announcement deleted successfully"}, writer)
}
