package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type ProgramHandler struct {
	repo entity.ProgramRepository
}

func NewProgramHandler(repo entity.ProgramRepository) *ProgramHandler {
	return &ProgramHandler{repo: repo}
}

func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	programs, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "programs")
		return
	}
	respondJSON(w, http.StatusOK, programs)
}

func (h *ProgramHandler) Get(w http.ResponseWriter, r *http.Request) {
	program, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Program")
		return
	}
	respondJSON(w, http.StatusOK, program)
}

func (h *ProgramHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	program, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, "Program")
		return
	}
	respondJSON(w, http.StatusOK, program)
}

func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateProgramInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	program, err := usecase.ValidateCreateProgram(input)
	if err != nil {
		respondError(w, err, "program")
		return
	}

	if err := h.repo.Create(r.Context(), program); err != nil {
		respondError(w, err, "program")
		return
	}
	respondJSON(w, http.StatusCreated, program)
}

func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateProgramInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateProgram(input)
	if err != nil {
		respondError(w, err, "program")
		return
	}

	program, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Program")
		return
	}
	respondJSON(w, http.StatusOK, program)
}

func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Program")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
