package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

type SiteSettingHandler struct {
	repo entity.SiteSettingRepository
}

func NewSiteSettingHandler(repo entity.SiteSettingRepository) *SiteSettingHandler {
	return &SiteSettingHandler{repo: repo}
}

// GetAll devuelve la configuración completa como mapa clave→valor plano,
// no como lista de filas.
func (h *SiteSettingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.All(r.Context())
	if err != nil {
		respondError(w, err, "settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// Put hace upsert de una clave. El valor tiene que ser string: cualquier
// otro tipo JSON se rechaza con 400.
func (h *SiteSettingHandler) Put(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	value, ok := body["value"].(string)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "Value must be a string")
		return
	}

	setting, err := h.repo.Upsert(r.Context(), chi.URLParam(r, "key"), value)
	if err != nil {
		respondError(w, err, "setting")
		return
	}
	respondJSON(w, http.StatusOK, setting)
}
