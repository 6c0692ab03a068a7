package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type InstructorHandler struct {
	repo        entity.InstructorRepository
	specialties entity.InstructorSpecialtyRepository
}

func NewInstructorHandler(repo entity.InstructorRepository, specialties entity.InstructorSpecialtyRepository) *InstructorHandler {
	return &InstructorHandler{repo: repo, specialties: specialties}
}

func (h *InstructorHandler) List(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "instructors")
		return
	}
	respondJSON(w, http.StatusOK, instructors)
}

func (h *InstructorHandler) Get(w http.ResponseWriter, r *http.Request) {
	instructor, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Instructor")
		return
	}
	respondJSON(w, http.StatusOK, instructor)
}

func (h *InstructorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateInstructorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	instructor, err := usecase.ValidateCreateInstructor(input)
	if err != nil {
		respondError(w, err, "instructor")
		return
	}

	if err := h.repo.Create(r.Context(), instructor); err != nil {
		respondError(w, err, "instructor")
		return
	}
	respondJSON(w, http.StatusCreated, instructor)
}

func (h *InstructorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateInstructorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateInstructor(input)
	if err != nil {
		respondError(w, err, "instructor")
		return
	}

	instructor, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Instructor")
		return
	}
	respondJSON(w, http.StatusOK, instructor)
}

func (h *InstructorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Instructor")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Especialidades (tabla puente instructor↔programa) ---

func (h *InstructorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	filter := entity.InstructorSpecialtyFilter{
		InstructorID: r.URL.Query().Get("instructorId"),
		ProgramID:    r.URL.Query().Get("programId"),
	}
	specialties, err := h.specialties.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "instructor specialties")
		return
	}
	respondJSON(w, http.StatusOK, specialties)
}

func (h *InstructorHandler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateInstructorSpecialtyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	specialty, err := usecase.ValidateCreateInstructorSpecialty(input)
	if err != nil {
		respondError(w, err, "instructor specialty")
		return
	}

	if err := h.specialties.Create(r.Context(), specialty); err != nil {
		respondError(w, err, "instructor specialty")
		return
	}
	respondJSON(w, http.StatusCreated, specialty)
}

func (h *InstructorHandler) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	if _, err := h.specialties.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Instructor specialty")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
