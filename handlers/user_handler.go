package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cristalhq/jwt/v4"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"building_service/authorization"
	"building_service/domain"
	errs "building_service/errors"
	application "building_service/service"
)

type UserHandler struct {
	service  *application.UserService
	verifier jwt.Verifier
	tracer   trace.Tracer
	logger   *logrus.Logger
}

type CreateUserResponse struct {
	Message string             `json:"message"`
	UserID  primitive.ObjectID `json:"userId"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

func NewUserHandler(service *application.UserService, verifier jwt.Verifier, tracer trace.Tracer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		verifier: verifier,
		tracer:   tracer,
		logger:   logger,
	}
}

func (handler *UserHandler) Init(router *mux.Router) {
	router.HandleFunc("/users", handler.GetAll).Methods("GET")
	router.HandleFunc("/users", handler.Create).Methods("POST")
	router.HandleFunc("/users/admin/{email}", handler.CheckAdmin).Methods("GET")
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error fetching users: ", err)
		jsonError("Failed to fetch users", http.StatusInternalServerError, writer)
		return
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Create")
	defer span.End()

	var user domain.User
	err := json.NewDecoder(req.Body).Decode(&user)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.InvalidRequestFormatError, http.StatusBadRequest, writer)
		return
	}

	if err := user.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.MissingRequiredFields, http.StatusBadRequest, writer)
		return
	}

	saved, err := handler.service.Create(ctx, &user)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if err.Error() == errs.UserExists {
			jsonError(err.Error(), http.StatusConflict, writer)
			return
		}
		handler.logger.Error("Error creating user: ", err)
		jsonError("Failed to create user", http.StatusInternalServerError, writer)
		return
	}

	writer.WriteHeader(http.StatusCreated)
	jsonResponse(CreateUserResponse{
		Message: "User created successfully",
		UserID:  saved.ID,
	}, writer)
}

// CheckAdmin requires the caller's verified identity to match the requested
// email. Requests without a valid token are rejected, never waved through.
func (handler *UserHandler) CheckAdmin(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.CheckAdmin")
	defer span.End()

	vars := mux.Vars(req)
	email := vars["email"]

	tokenString := authorization.ExtractBearerToken(req.Header.Get("Authorization"))
	if tokenString == "" {
		span.SetStatus(codes.Error, errs.UnauthorizedError)
		jsonError(errs.UnauthorizedError, http.StatusForbidden, writer)
		return
	}

	token, err := authorization.GetToken(tokenString, handler.verifier)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		jsonError(errs.UnauthorizedError, http.StatusForbidden, writer)
		return
	}

	claims := authorization.GetMapClaims(token.Bytes(), handler.verifier)
	if claims["email"] != email {
		span.SetStatus(codes.Error, errs.UnauthorizedError)
		jsonError(errs.UnauthorizedError, http.StatusForbidden, writer)
		return
	}

	admin, err := handler.service.IsAdmin(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.Error("Error checking admin role: ", err)
		jsonError("Failed to check admin role", http.StatusInternalServerError, writer)
		return
	}

	jsonResponse(AdminCheckResponse{Admin: admin}, writer)
}
