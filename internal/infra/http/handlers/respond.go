package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/middleware"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondError traduce la taxonomía de errores a HTTP en un único sitio:
// validación→400 con el detalle campo a campo, not-found→404, update
// vacío→400, y cualquier fallo de storage→500 genérico (el detalle solo
// se loguea, nunca viaja al cliente).
func respondError(w http.ResponseWriter, err error, resource string) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation error",
			"details": verrs,
		})
	case errors.Is(err, usecase.ErrEmptyUpdate):
		writeErrorResponse(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, entity.ErrNotFound):
		writeErrorResponse(w, http.StatusNotFound, resource+" not found")
	default:
		log.Printf("❌ Error interno en %s: %v", resource, err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to process "+resource)
	}
}

// visibilityFrom decide qué ven los listados: público por defecto, y todo
// solo si lo pide explícitamente una petición autenticada del CMS.
func visibilityFrom(r *http.Request) entity.Visibility {
	if r.URL.Query().Get("includeUnpublished") != "true" {
		return entity.VisibilityPublic
	}
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		return entity.VisibilityPublic
	}
	return entity.VisibilityAll
}
