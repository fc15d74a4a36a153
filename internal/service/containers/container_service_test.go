package containers

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContainerRepository struct {
	mock.Mock
}

func (m *MockContainerRepository) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetContainer(ctx context.Context, id string) (*domain.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockCache) SetContainer(ctx context.Context, container *domain.Container) error {
	args := m.Called(ctx, container)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordContainerLookup(result, source string) {
	m.Called(result, source)
}

func sampleContainer() *domain.Container {
	c := domain.NewContainer("OOCL123", 25000, "Shanghai")
	return &c
}

func TestContainerService_GetByID_NoCache(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	service := NewContainerService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "OOCL123").Return(sampleContainer(), nil).Once()

	container, err := service.GetByID(ctx, "OOCL123")

	assert.NoError(t, err)
	assert.Equal(t, sampleContainer(), container)
	mockRepo.AssertExpectations(t)
}

func TestContainerService_GetByID_CacheHit(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	mockCache := &MockCache{}
	mockRecorder := &MockRecorder{}
	service := NewContainerService(mockRepo, WithCache(mockCache), WithRecorder(mockRecorder))
	ctx := context.Background()

	mockCache.On("GetContainer", ctx, "OOCL123").Return(sampleContainer(), nil).Once()
	mockRecorder.On("RecordContainerLookup", "hit", "cache").Once()

	container, err := service.GetByID(ctx, "OOCL123")

	assert.NoError(t, err)
	assert.Equal(t, "Shanghai", container.PortOfOrigin)
	mockCache.AssertExpectations(t)
	mockRecorder.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestContainerService_GetByID_CacheMiss(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	mockCache := &MockCache{}
	service := NewContainerService(mockRepo, WithCache(mockCache))
	ctx := context.Background()

	mockCache.On("GetContainer", ctx, "OOCL123").Return(nil, nil).Once()
	mockRepo.On("GetByID", ctx, "OOCL123").Return(sampleContainer(), nil).Once()
	mockCache.On("SetContainer", ctx, sampleContainer()).Return(nil).Once()

	container, err := service.GetByID(ctx, "OOCL123")

	assert.NoError(t, err)
	assert.Equal(t, float64(25000), container.Weight)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestContainerService_GetByID_CacheErrorFallsThrough(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	mockCache := &MockCache{}
	service := NewContainerService(mockRepo, WithCache(mockCache))
	ctx := context.Background()

	mockCache.On("GetContainer", ctx, "OOCL123").Return(nil, errors.New("redis down")).Once()
	mockRepo.On("GetByID", ctx, "OOCL123").Return(sampleContainer(), nil).Once()
	mockCache.On("SetContainer", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	container, err := service.GetByID(ctx, "OOCL123")

	assert.NoError(t, err)
	assert.NotNil(t, container)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestContainerService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	mockCache := &MockCache{}
	mockRecorder := &MockRecorder{}
	service := NewContainerService(mockRepo, WithCache(mockCache), WithRecorder(mockRecorder))
	ctx := context.Background()

	mockCache.On("GetContainer", ctx, "UNKNOWN").Return(nil, nil).Once()
	mockRepo.On("GetByID", ctx, "UNKNOWN").Return(nil, domain.ErrContainerNotFound).Once()
	mockRecorder.On("RecordContainerLookup", "miss", "repository").Once()

	container, err := service.GetByID(ctx, "UNKNOWN")

	assert.Nil(t, container)
	assert.ErrorIs(t, err, domain.ErrContainerNotFound)
	mockCache.AssertNotCalled(t, "SetContainer")
	mockRecorder.AssertExpectations(t)
}

func TestContainerService_GetByID_RepositoryError(t *testing.T) {
	mockRepo := &MockContainerRepository{}
	mockRecorder := &MockRecorder{}
	service := NewContainerService(mockRepo, WithRecorder(mockRecorder))
	ctx := context.Background()

	expectedErr := errors.New("database error")
	mockRepo.On("GetByID", ctx, "OOCL123").Return(nil, expectedErr).Once()
	mockRecorder.On("RecordContainerLookup", "error", "repository").Once()

	container, err := service.GetByID(ctx, "OOCL123")

	assert.Nil(t, container)
	assert.Equal(t, expectedErr, err)
	mockRecorder.AssertExpectations(t)
}
