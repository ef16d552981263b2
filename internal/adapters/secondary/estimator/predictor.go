// Package estimator is the blob-backed prediction invoker: it deserializes
// a stored pipeline artifact and runs single-row inference.
package estimator

import (
	"context"
	"errors"
	"fmt"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
	"course-forecast-service/internal/ml/pipeline"
	"course-forecast-service/internal/ml/textproc"
)

type BlobPredictor struct {
	blobs    ports.BlobStore
	analyzer *textproc.Analyzer
}

func New(blobs ports.BlobStore, analyzer *textproc.Analyzer) *BlobPredictor {
	return &BlobPredictor{blobs: blobs, analyzer: analyzer}
}

var _ ports.Predictor = (*BlobPredictor)(nil)

// Predict loads the artifact at artifactPath and returns the raw scalar
// forecast for row. A missing or undecodable blob is fatal for the caller's
// save and is not retried here.
func (p *BlobPredictor) Predict(ctx context.Context, artifactPath string, row pipeline.Row) (float64, error) {
	rc, err := p.blobs.Read(ctx, artifactPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrArtifactUnreadable, err)
	}
	defer rc.Close()

	pl, err := pipeline.Load(rc, p.analyzer)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrArtifactUnreadable, err)
	}

	prediction, err := pl.Predict(row)
	if err != nil {
		if errors.Is(err, pipeline.ErrUnknownCategory) {
			return 0, fmt.Errorf("%w: %v", domain.ErrEstimatorInput, err)
		}
		return 0, fmt.Errorf("predict: %w", err)
	}
	return prediction, nil
}
