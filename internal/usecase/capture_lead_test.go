package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/queue"
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

type MockLeadProducer struct {
	mock.Mock
}

func (m *MockLeadProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestCaptureLeadPublishesEvent(t *testing.T) {
	repo := new(MockLeadRepository)
	producer := new(MockLeadProducer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.MatchedBy(func(p queue.LeadCapturedPayload) bool {
		return p.Type == "wedding" && p.Email == "nuria@x.com"
	})).Return(nil)

	uc := NewCaptureLeadUseCase(repo, producer)

	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		Type:  "wedding",
		Name:  "Nuria",
		Email: "nuria@x.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

// Un broker caído nunca puede tumbar el formulario público: el lead
// queda guardado y el error de publicación solo se loguea.
func TestCaptureLeadBrokerFailureIsNonFatal(t *testing.T) {
	repo := new(MockLeadRepository)
	producer := new(MockLeadProducer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewCaptureLeadUseCase(repo, producer)

	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		Type:  "contact",
		Name:  "Ana",
		Email: "ana@x.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCaptureLeadWithoutProducer(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(repo, nil)

	lead, err := uc.Execute(context.Background(), CreateLeadInput{
		Type:  "pre_registration",
		Name:  "Ana",
		Email: "ana@x.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCaptureLeadValidationFailureSkipsRepo(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCaptureLeadUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		Type:  "telepathy",
		Name:  "Ana",
		Email: "ana@x.com",
	})

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
