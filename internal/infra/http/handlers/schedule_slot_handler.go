package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type ScheduleSlotHandler struct {
	repo entity.ScheduleSlotRepository
}

func NewScheduleSlotHandler(repo entity.ScheduleSlotRepository) *ScheduleSlotHandler {
	return &ScheduleSlotHandler{repo: repo}
}

// List devuelve la parrilla semanal. En modo público un slot solo aparece
// si él Y su programa están publicados.
func (h *ScheduleSlotHandler) List(w http.ResponseWriter, r *http.Request) {
	slots, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "schedule")
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

func (h *ScheduleSlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	slot, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Schedule slot")
		return
	}
	respondJSON(w, http.StatusOK, slot)
}

func (h *ScheduleSlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateScheduleSlotInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	slot, err := usecase.ValidateCreateScheduleSlot(input)
	if err != nil {
		respondError(w, err, "schedule slot")
		return
	}

	if err := h.repo.Create(r.Context(), slot); err != nil {
		respondError(w, err, "schedule slot")
		return
	}
	respondJSON(w, http.StatusCreated, slot)
}

func (h *ScheduleSlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateScheduleSlotInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateScheduleSlot(input)
	if err != nil {
		respondError(w, err, "schedule slot")
		return
	}

	slot, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Schedule slot")
		return
	}
	respondJSON(w, http.StatusOK, slot)
}

func (h *ScheduleSlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Schedule slot")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
