package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type PricingTierHandler struct {
	repo entity.PricingTierRepository
}

func NewPricingTierHandler(repo entity.PricingTierRepository) *PricingTierHandler {
	return &PricingTierHandler{repo: repo}
}

func (h *PricingTierHandler) List(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "pricing tiers")
		return
	}
	respondJSON(w, http.StatusOK, tiers)
}

func (h *PricingTierHandler) Get(w http.ResponseWriter, r *http.Request) {
	tier, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Pricing tier")
		return
	}
	respondJSON(w, http.StatusOK, tier)
}

func (h *PricingTierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePricingTierInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	tier, err := usecase.ValidateCreatePricingTier(input)
	if err != nil {
		respondError(w, err, "pricing tier")
		return
	}

	if err := h.repo.Create(r.Context(), tier); err != nil {
		respondError(w, err, "pricing tier")
		return
	}
	respondJSON(w, http.StatusCreated, tier)
}

func (h *PricingTierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdatePricingTierInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdatePricingTier(input)
	if err != nil {
		respondError(w, err, "pricing tier")
		return
	}

	tier, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Pricing tier")
		return
	}
	respondJSON(w, http.StatusOK, tier)
}

func (h *PricingTierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Pricing tier")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
