package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validate se comparte entre todos los handlers.
var validate = validator.New()

type successEnvelope struct {
	Status  int    `json:"status"`
	Payload any    `json:"payload"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Status       int    `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

// respond escribe el sobre de éxito {status, payload, message}.
func respond(w http.ResponseWriter, status int, payload any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{
		Status:  status,
		Payload: payload,
		Message: message,
	})
}

// respondErr mapea el error al sobre {status, errorMessage}. Cualquier
// error sin código apperr se responde como 500 genérico sin filtrar el
// detalle interno.
func respondErr(w http.ResponseWriter, err error) {
	status := apperr.CodeOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[handler] error interno: %v", err)
		msg = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Status:       status,
		ErrorMessage: msg,
	})
}

// idParam parsea un ObjectID de la URL.
func idParam(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid " + name)
	}
	return id, nil
}

// pageParams lee page y limit del query string (los defaults los pone
// el service).
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// totalPages para la metadata de paginación de los listados. El default
// de limit es el mismo que aplican los services.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		limit = 10
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// decodeBody decodifica y valida el body según las tags `validate`.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.BadRequest(err.Error())
	}
	return nil
}
