package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type BusinessModelHandler struct {
	repo entity.BusinessModelRepository
}

func NewBusinessModelHandler(repo entity.BusinessModelRepository) *BusinessModelHandler {
	return &BusinessModelHandler{repo: repo}
}

func (h *BusinessModelHandler) List(w http.ResponseWriter, r *http.Request) {
	models, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "business models")
		return
	}
	respondJSON(w, http.StatusOK, models)
}

func (h *BusinessModelHandler) Get(w http.ResponseWriter, r *http.Request) {
	model, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Business model")
		return
	}
	respondJSON(w, http.StatusOK, model)
}

func (h *BusinessModelHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	model, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, "Business model")
		return
	}
	respondJSON(w, http.StatusOK, model)
}

func (h *BusinessModelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateBusinessModelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	model, err := usecase.ValidateCreateBusinessModel(input)
	if err != nil {
		respondError(w, err, "business model")
		return
	}

	if err := h.repo.Create(r.Context(), model); err != nil {
		respondError(w, err, "business model")
		return
	}
	respondJSON(w, http.StatusCreated, model)
}

func (h *BusinessModelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateBusinessModelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateBusinessModel(input)
	if err != nil {
		respondError(w, err, "business model")
		return
	}

	model, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Business model")
		return
	}
	respondJSON(w, http.StatusOK, model)
}

func (h *BusinessModelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Business model")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
