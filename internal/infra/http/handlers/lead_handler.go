package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/middleware"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type LeadHandler struct {
	capture     *usecase.CaptureLeadUseCase
	repo        entity.LeadRepository
	rateLimiter *RateLimiter
}

func NewLeadHandler(capture *usecase.CaptureLeadUseCase, repo entity.LeadRepository) *LeadHandler {
	return &LeadHandler{
		capture:     capture,
		repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Create es el único endpoint de escritura público: recibe el formulario
// de contacto/preinscripción, con rate limit por IP para frenar bots.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	lead, err := h.capture.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err, "lead")
		return
	}

	middleware.RecordLeadCaptured(string(lead.Type))
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := entity.LeadFilter{
		Status: entity.LeadStatus(r.URL.Query().Get("status")),
		Type:   entity.LeadType(r.URL.Query().Get("type")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	if filter.Type != "" && !filter.Type.Valid() {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid type filter")
		return
	}

	leads, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "leads")
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "Lead")
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	patch, err := usecase.ValidateUpdateLead(input)
	if err != nil {
		respondError(w, err, "lead")
		return
	}

	lead, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Lead")
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "Lead")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// RateLimiter es un limitador de ventana fija por IP, suficiente para un
// formulario público de bajo tráfico.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
