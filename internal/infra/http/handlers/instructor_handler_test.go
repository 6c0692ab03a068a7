package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

type MockInstructorRepository struct {
	mock.Mock
}

func (m *MockInstructorRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.InstructorWithSpecialties, error) {
	args := m.Called(ctx, vis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.InstructorWithSpecialties), args.Error(1)
}

func (m *MockInstructorRepository) FindByID(ctx context.Context, id string) (*entity.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) Create(ctx context.Context, i *entity.Instructor) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInstructorRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Instructor, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Instructor), args.Error(1)
}

func (m *MockInstructorRepository) Delete(ctx context.Context, id string) (*entity.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Instructor), args.Error(1)
}

type MockInstructorSpecialtyRepository struct {
	mock.Mock
}

func (m *MockInstructorSpecialtyRepository) List(ctx context.Context, filter entity.InstructorSpecialtyFilter) ([]entity.InstructorSpecialty, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.InstructorSpecialty), args.Error(1)
}

func (m *MockInstructorSpecialtyRepository) Create(ctx context.Context, s *entity.InstructorSpecialty) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockInstructorSpecialtyRepository) Delete(ctx context.Context, id string) (*entity.InstructorSpecialty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InstructorSpecialty), args.Error(1)
}

func TestInstructorListIncludesSpecialties(t *testing.T) {
	repo := new(MockInstructorRepository)
	specialties := new(MockInstructorSpecialtyRepository)

	repo.On("List", mock.Anything, entity.VisibilityPublic).Return([]entity.InstructorWithSpecialties{
		{
			Instructor:  entity.Instructor{ID: "i1", Name: "Elena Herrero"},
			Specialties: []string{"Ballet Clásico Profesional", "Contemporáneo Avanzado"},
		},
		{
			Instructor:  entity.Instructor{ID: "i2", Name: "Diego Montes"},
			Specialties: []string{},
		},
	}, nil)

	h := NewInstructorHandler(repo, specialties)
	r := chi.NewRouter()
	r.Get("/instructors", h.List)

	req := httptest.NewRequest(http.MethodGet, "/instructors", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []entity.InstructorWithSpecialties
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	// Igualdad de conjunto, el orden de los programas no importa
	assert.ElementsMatch(t, []string{"Contemporáneo Avanzado", "Ballet Clásico Profesional"}, got[0].Specialties)
	// Sin vínculos la lista viaja como [] y nunca como null
	assert.NotNil(t, got[1].Specialties)
	assert.Empty(t, got[1].Specialties)
}

func TestSpecialtyListFiltersByInstructor(t *testing.T) {
	repo := new(MockInstructorRepository)
	specialties := new(MockInstructorSpecialtyRepository)

	filter := entity.InstructorSpecialtyFilter{InstructorID: "i1"}
	specialties.On("List", mock.Anything, filter).Return([]entity.InstructorSpecialty{
		{ID: "s1", InstructorID: "i1", ProgramID: "p1", IsPrimary: true},
	}, nil)

	h := NewInstructorHandler(repo, specialties)
	r := chi.NewRouter()
	r.Get("/instructor-specialties", h.ListSpecialties)

	req := httptest.NewRequest(http.MethodGet, "/instructor-specialties?instructorId=i1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	specialties.AssertExpectations(t)
}
