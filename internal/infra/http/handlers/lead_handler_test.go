package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/usecase"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Lead, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func newLeadRouter(repo entity.LeadRepository) *chi.Mux {
	uc := usecase.NewCaptureLeadUseCase(repo, nil)
	h := NewLeadHandler(uc, repo)
	r := chi.NewRouter()
	r.Post("/leads", h.Create)
	r.Get("/leads", h.List)
	r.Get("/leads/{id}", h.Get)
	r.Put("/leads/{id}", h.Update)
	r.Delete("/leads/{id}", h.Delete)
	return r
}

func TestLeadCaptureReturnsStatusNew(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := []byte(`{"type":"pre_registration","name":"Ana","email":"ana@x.com","programId":"prog-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, "prog-1", *lead.ProgramID)
}

func TestLeadCaptureInvalidType(t *testing.T) {
	repo := new(MockLeadRepository)

	body := []byte(`{"type":"spam","name":"Ana","email":"ana@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeadUpdateStatusTransition(t *testing.T) {
	repo := new(MockLeadRepository)
	updated := &entity.Lead{
		ID:        "lead-1",
		Type:      entity.LeadTypePreRegistration,
		Status:    entity.LeadStatusContacted,
		Name:      "Ana",
		Email:     "ana@x.com",
		UpdatedAt: time.Now(),
	}
	repo.On("Update", mock.Anything, "lead-1", entity.Patch{"status": "contacted"}).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/leads/lead-1", bytes.NewReader([]byte(`{"status":"contacted"}`)))
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var lead entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, entity.LeadStatusContacted, lead.Status)
	repo.AssertExpectations(t)
}

// No hay pipeline de estados: reabrir un lead cerrado es una transición
// válida más; solo el valor fuera del enum se rechaza.
func TestLeadUpdateReopenClosedLead(t *testing.T) {
	repo := new(MockLeadRepository)
	reopened := &entity.Lead{ID: "lead-2", Status: entity.LeadStatusNew, Name: "Ana", Email: "ana@x.com"}
	repo.On("Update", mock.Anything, "lead-2", entity.Patch{"status": "new"}).Return(reopened, nil)

	req := httptest.NewRequest(http.MethodPut, "/leads/lead-2", bytes.NewReader([]byte(`{"status":"new"}`)))
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestLeadListFilterPassthrough(t *testing.T) {
	repo := new(MockLeadRepository)
	filter := entity.LeadFilter{Status: entity.LeadStatusNew, Type: entity.LeadTypeWedding}
	repo.On("List", mock.Anything, filter).Return([]entity.Lead{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leads?status=new&type=wedding", nil)
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestLeadListInvalidFilter(t *testing.T) {
	repo := new(MockLeadRepository)

	req := httptest.NewRequest(http.MethodGet, "/leads?status=spam", nil)
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestLeadGetNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/leads/nope", nil)
	rec := httptest.NewRecorder()
	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadCaptureRateLimited(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	router := newLeadRouter(repo)

	body := `{"type":"contact","name":"Ana","email":"ana@x.com"}`
	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader([]byte(body)))
		req.Header.Set("X-Real-IP", "10.0.0.9")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
