package ports

import (
	"context"

	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
)

type ModelListFilter struct {
	OwnerID *uuid.UUID
	Search  string
	Limit   int
	Offset  int
}

type RequestListFilter struct {
	OwnerID     *uuid.UUID
	AlgorithmID *uuid.UUID
	Search      string
	Limit       int
	Offset      int
}

// MLModelRepository persists registered models. Writes that hit the unique
// index on endpoint return domain.ErrEndpointConflict.
type MLModelRepository interface {
	Create(ctx context.Context, model *domain.MLModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MLModel, error)
	GetByEndpoint(ctx context.Context, endpoint string) (*domain.MLModel, error)
	Update(ctx context.Context, model *domain.MLModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ModelListFilter) ([]*domain.MLModel, int, error)

	// EndpointTaken reports whether any model other than excludeID holds
	// the endpoint. The exclusion keeps re-saving an unchanged record from
	// colliding with itself.
	EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error)
}

// PredictionRequestRepository persists prediction requests. Same endpoint
// conflict contract as MLModelRepository.
type PredictionRequestRepository interface {
	Create(ctx context.Context, req *domain.PredictionRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PredictionRequest, error)
	GetByEndpoint(ctx context.Context, endpoint string) (*domain.PredictionRequest, error)
	Update(ctx context.Context, req *domain.PredictionRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter RequestListFilter) ([]*domain.PredictionRequest, int, error)
	EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error)
}
