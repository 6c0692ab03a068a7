package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

// LegalPageHandler y PageContentHandler son gemelos: mismo contrato, tabla
// distinta. Se mantienen separados para que las rutas no compartan repo.

type LegalPageHandler struct {
	repo entity.LegalPageRepository
}

func NewLegalPageHandler(repo entity.LegalPageRepository) *LegalPageHandler {
	return &LegalPageHandler{repo: repo}
}

func (h *LegalPageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "legal pages")
		return
	}
	respondJSON(w, http.StatusOK, pages)
}

func (h *LegalPageHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Legal page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *LegalPageHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, "Legal page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *LegalPageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	page, err := usecase.ValidateCreateLegalPage(input)
	if err != nil {
		respondError(w, err, "legal page")
		return
	}

	if err := h.repo.Create(r.Context(), page); err != nil {
		respondError(w, err, "legal page")
		return
	}
	respondJSON(w, http.StatusCreated, page)
}

func (h *LegalPageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdatePage(input)
	if err != nil {
		respondError(w, err, "legal page")
		return
	}

	page, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Legal page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *LegalPageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Legal page")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type PageContentHandler struct {
	repo entity.PageContentRepository
}

func NewPageContentHandler(repo entity.PageContentRepository) *PageContentHandler {
	return &PageContentHandler{repo: repo}
}

func (h *PageContentHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.repo.List(r.Context(), visibilityFrom(r))
	if err != nil {
		respondError(w, err, "pages")
		return
	}
	respondJSON(w, http.StatusOK, pages)
}

func (h *PageContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *PageContentHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, "Page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *PageContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	page, err := usecase.ValidateCreatePageContent(input)
	if err != nil {
		respondError(w, err, "page")
		return
	}

	if err := h.repo.Create(r.Context(), page); err != nil {
		respondError(w, err, "page")
		return
	}
	respondJSON(w, http.StatusCreated, page)
}

func (h *PageContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdatePage(input)
	if err != nil {
		respondError(w, err, "page")
		return
	}

	page, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Page")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *PageContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Page")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
