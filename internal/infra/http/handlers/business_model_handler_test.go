package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/http/middleware"
)

type MockBusinessModelRepository struct {
	mock.Mock
}

func (m *MockBusinessModelRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.BusinessModel, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BusinessModel), args.Error(1)
}

func (m *MockBusinessModelRepository) FindByID(ctx context.Context, id string) (*entity.BusinessModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessModel), args.Error(1)
}

func (m *MockBusinessModelRepository) FindBySlug(ctx context.Context, slug string) (*entity.BusinessModel, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessModel), args.Error(1)
}

func (m *MockBusinessModelRepository) Create(ctx context.Context, bm *entity.BusinessModel) error {
	args := m.Called(ctx, bm)
	return args.Error(0)
}

func (m *MockBusinessModelRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.BusinessModel, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessModel), args.Error(1)
}

func (m *MockBusinessModelRepository) Delete(ctx context.Context, id string) (*entity.BusinessModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BusinessModel), args.Error(1)
}

func newRouterWithBusinessModels(repo entity.BusinessModelRepository) *chi.Mux {
	h := NewBusinessModelHandler(repo)
	r := chi.NewRouter()
	r.Get("/business-models", h.List)
	r.Post("/business-models", h.Create)
	r.Put("/business-models/{id}", h.Update)
	r.Delete("/business-models/{id}", h.Delete)
	return r
}

func TestBusinessModelCreateSuccess(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := map[string]any{
		"slug":        "elite-on-demand",
		"name":        "Élite On Demand",
		"description": "Clases privadas",
		"features":    []string{"Personalizadas"},
		"advantages":  []string{"Progreso rápido"},
		"benefits":    []string{"Confianza escénica"},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/business-models", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.BusinessModel
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "elite-on-demand", created.Slug)
	assert.NotEmpty(t, created.ID)
	repo.AssertExpectations(t)
}

func TestBusinessModelCreateValidationError(t *testing.T) {
	repo := new(MockBusinessModelRepository)

	req := httptest.NewRequest(http.MethodPost, "/business-models", bytes.NewReader([]byte(`{"slug":"x"}`)))
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Error)
	assert.NotEmpty(t, resp.Details)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBusinessModelUpdateEmptyBody(t *testing.T) {
	repo := new(MockBusinessModelRepository)

	req := httptest.NewRequest(http.MethodPut, "/business-models/abc", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No fields to update")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBusinessModelDeleteNotFound(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("Delete", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/business-models/missing", nil)
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBusinessModelDeleteSuccess(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("Delete", mock.Anything, "abc").Return(&entity.BusinessModel{ID: "abc"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/business-models/abc", nil)
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// Sin identidad de staff en el contexto, includeUnpublished=true no
// cambia nada: el listado sigue siendo el público.
func TestBusinessModelListIgnoresIncludeUnpublishedForAnonymous(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("List", mock.Anything, entity.VisibilityPublic).Return([]entity.BusinessModel{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/business-models?includeUnpublished=true", nil)
	rec := httptest.NewRecorder()
	newRouterWithBusinessModels(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

// Montaje como en cmd/api: OptionalStaff delante de los GET públicos, para
// que el CMS autenticado pueda listar también los borradores.
func TestBusinessModelListIncludesUnpublishedForStaff(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("List", mock.Anything, entity.VisibilityAll).Return([]entity.BusinessModel{}, nil)

	h := NewBusinessModelHandler(repo)
	r := chi.NewRouter()
	r.Use(middleware.OptionalStaff("secret-token"))
	r.Get("/business-models", h.List)

	req := httptest.NewRequest(http.MethodGet, "/business-models?includeUnpublished=true", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

// Autenticado pero sin pedir el flag: sigue viendo solo lo publicado.
func TestBusinessModelListStaffWithoutFlagSeesPublic(t *testing.T) {
	repo := new(MockBusinessModelRepository)
	repo.On("List", mock.Anything, entity.VisibilityPublic).Return([]entity.BusinessModel{}, nil)

	h := NewBusinessModelHandler(repo)
	r := chi.NewRouter()
	r.Use(middleware.OptionalStaff("secret-token"))
	r.Get("/business-models", h.List)

	req := httptest.NewRequest(http.MethodGet, "/business-models", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}
