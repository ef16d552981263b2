package ports

import (
	"context"

	"course-forecast-service/internal/ml/pipeline"
)

// Predictor loads a serialized estimator from blob storage and runs
// inference on a single feature row. The call is synchronous and blocking;
// callers needing bounded latency cancel via ctx and treat expiry as
// retryable (the enclosing save has not committed).
type Predictor interface {
	Predict(ctx context.Context, artifactPath string, row pipeline.Row) (float64, error)
}
