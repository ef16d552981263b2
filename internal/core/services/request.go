package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
	"course-forecast-service/internal/ml/pipeline"
)

// RequestService orchestrates the PredictionRequest lifecycle. Prediction
// and endpoint computation are synchronous parts of the same save: a row is
// never written without both.
type RequestService struct {
	repo      ports.PredictionRequestRepository
	models    ports.MLModelRepository
	predictor ports.Predictor
}

func NewRequestService(repo ports.PredictionRequestRepository, models ports.MLModelRepository, predictor ports.Predictor) *RequestService {
	return &RequestService{repo: repo, models: models, predictor: predictor}
}

// RequestUpdate carries a partial update. Nil fields keep their current
// value. Any change re-runs prediction and endpoint computation together.
type RequestUpdate struct {
	CourseTitle     *string
	Price           *float64
	ContentDuration *float64
	NumLectures     *int
	Level           *domain.Level
	Days            *int
	AlgorithmID     *uuid.UUID
}

func (s *RequestService) Create(ctx context.Context, ownerID uuid.UUID, algorithmID uuid.UUID, in domain.RequestInput) (*domain.PredictionRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	algorithm, err := s.models.GetByID(ctx, algorithmID)
	if err != nil {
		return nil, err
	}

	req := &domain.PredictionRequest{
		ID:              uuid.New(),
		CreatedAt:       time.Now().UTC(),
		OwnerID:         ownerID,
		CourseTitle:     strings.ToLower(in.CourseTitle),
		Price:           in.Price,
		ContentDuration: in.ContentDuration,
		NumLectures:     in.NumLectures,
		Level:           in.Level,
		Days:            in.Days,
		AlgorithmID:     algorithm.ID,
	}

	if err := s.predictAndStore(ctx, req, algorithm, s.repo.Create); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequestService) Get(ctx context.Context, endpoint string) (*domain.PredictionRequest, error) {
	return s.repo.GetByEndpoint(ctx, endpoint)
}

func (s *RequestService) List(ctx context.Context, filter ports.RequestListFilter) ([]*domain.PredictionRequest, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// Update applies the partial update, then recomputes prediction and
// endpoint as one unit before the row is rewritten. The creation timestamp
// is immutable, so the endpoint date component never drifts on update.
func (s *RequestService) Update(ctx context.Context, endpoint string, upd RequestUpdate) (*domain.PredictionRequest, error) {
	req, err := s.repo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if upd.CourseTitle != nil {
		req.CourseTitle = strings.ToLower(*upd.CourseTitle)
	}
	if upd.Price != nil {
		req.Price = *upd.Price
	}
	if upd.ContentDuration != nil {
		req.ContentDuration = *upd.ContentDuration
	}
	if upd.NumLectures != nil {
		req.NumLectures = *upd.NumLectures
	}
	if upd.Level != nil {
		req.Level = *upd.Level
	}
	if upd.Days != nil {
		req.Days = *upd.Days
	}
	if upd.AlgorithmID != nil {
		req.AlgorithmID = *upd.AlgorithmID
	}

	in := domain.RequestInput{
		CourseTitle:     req.CourseTitle,
		Price:           req.Price,
		ContentDuration: req.ContentDuration,
		NumLectures:     req.NumLectures,
		Level:           req.Level,
		Days:            req.Days,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	algorithm, err := s.models.GetByID(ctx, req.AlgorithmID)
	if err != nil {
		return nil, err
	}

	if err := s.predictAndStore(ctx, req, algorithm, s.repo.Update); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequestService) Delete(ctx context.Context, endpoint string) error {
	req, err := s.repo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, req.ID)
}

// predictAndStore runs inference, allocates the endpoint and writes the row
// via write. Every fault aborts before write; unique-index rejections
// re-allocate with the next suffix.
func (s *RequestService) predictAndStore(ctx context.Context, req *domain.PredictionRequest, algorithm *domain.MLModel, write func(context.Context, *domain.PredictionRequest) error) error {
	row := pipeline.Row{
		CourseTitle:     req.CourseTitle,
		Price:           req.Price,
		ContentDuration: req.ContentDuration,
		NumLectures:     req.NumLectures,
		Days:            req.Days,
		Level:           string(req.Level),
	}
	prediction, err := s.predictor.Predict(ctx, algorithm.FilePath, row)
	if err != nil {
		return err
	}
	req.Prediction = math.Round(prediction)

	base := requestEndpointBase(req.CourseTitle, algorithm.ID, req.Days, req.CreatedAt)
	for attempt := 0; attempt < writeRetries; attempt++ {
		endpoint, err := allocateEndpoint(ctx, base, s.endpointTaken(req.ID))
		if err != nil {
			return err
		}
		req.Endpoint = endpoint

		err = write(ctx, req)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrEndpointConflict) {
			return err
		}
	}
	return domain.ErrEndpointExhausted
}

func (s *RequestService) endpointTaken(excludeID uuid.UUID) takenFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.EndpointTaken(ctx, candidate, excludeID)
	}
}
