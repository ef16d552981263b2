package testutil

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
	"course-forecast-service/internal/ml/pipeline"
)

// MockMLModelRepo is a mock of MLModelRepository.
type MockMLModelRepo struct {
	mock.Mock
}

func (m *MockMLModelRepo) Create(ctx context.Context, model *domain.MLModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockMLModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MLModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MLModel), args.Error(1)
}

func (m *MockMLModelRepo) GetByEndpoint(ctx context.Context, endpoint string) (*domain.MLModel, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MLModel), args.Error(1)
}

func (m *MockMLModelRepo) Update(ctx context.Context, model *domain.MLModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockMLModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMLModelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.MLModel, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.MLModel), args.Int(1), args.Error(2)
}

func (m *MockMLModelRepo) EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, endpoint, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockPredictionRequestRepo is a mock of PredictionRequestRepository.
type MockPredictionRequestRepo struct {
	mock.Mock
}

func (m *MockPredictionRequestRepo) Create(ctx context.Context, req *domain.PredictionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPredictionRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PredictionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PredictionRequest), args.Error(1)
}

func (m *MockPredictionRequestRepo) GetByEndpoint(ctx context.Context, endpoint string) (*domain.PredictionRequest, error) {
	args := m.Called(ctx, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PredictionRequest), args.Error(1)
}

func (m *MockPredictionRequestRepo) Update(ctx context.Context, req *domain.PredictionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPredictionRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPredictionRequestRepo) List(ctx context.Context, filter ports.RequestListFilter) ([]*domain.PredictionRequest, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.PredictionRequest), args.Int(1), args.Error(2)
}

func (m *MockPredictionRequestRepo) EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, endpoint, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockBlobStore is a mock of BlobStore.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Write(ctx context.Context, path string, r io.Reader) error {
	args := m.Called(ctx, path, r)
	return args.Error(0)
}

func (m *MockBlobStore) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockBlobStore) Rename(ctx context.Context, oldPath, newPath string) error {
	args := m.Called(ctx, oldPath, newPath)
	return args.Error(0)
}

// MockPredictor is a mock of Predictor.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(ctx context.Context, artifactPath string, row pipeline.Row) (float64, error) {
	args := m.Called(ctx, artifactPath, row)
	return args.Get(0).(float64), args.Error(1)
}
