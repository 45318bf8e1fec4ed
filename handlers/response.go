package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(writer).Encode(object)
	if err != nil {
		log.Println(err)
	}
}

func jsonError(message string, statusCode int, writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	err := json.NewEncoder(writer).Encode(ErrorResponse{Error: message})
	if err != nil {
		log.Println(err)
	}
}

func ExtractTraceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
