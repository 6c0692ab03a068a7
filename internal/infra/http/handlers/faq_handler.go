package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type FaqHandler struct {
	repo entity.FaqRepository
}

func NewFaqHandler(repo entity.FaqRepository) *FaqHandler {
	return &FaqHandler{repo: repo}
}

func (h *FaqHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "faqs")
		return
	}
	respondJSON(w, http.StatusOK, faqs)
}

func (h *FaqHandler) Get(w http.ResponseWriter, r *http.Request) {
	faq, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Faq")
		return
	}
	respondJSON(w, http.StatusOK, faq)
}

func (h *FaqHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateFaqInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	faq, err := usecase.ValidateCreateFaq(input)
	if err != nil {
		respondError(w, err, "faq")
		return
	}

	if err := h.repo.Create(r.Context(), faq); err != nil {
		respondError(w, err, "faq")
		return
	}
	respondJSON(w, http.StatusCreated, faq)
}

func (h *FaqHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateFaqInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateFaq(input)
	if err != nil {
		respondError(w, err, "faq")
		return
	}

	faq, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Faq")
		return
	}
	respondJSON(w, http.StatusOK, faq)
}

func (h *FaqHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Faq")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
