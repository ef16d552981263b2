// Package pipeline implements the serialized estimator format: a linear
// regression over TF-IDF title features, min-max scaled numeric features
// and a one-hot encoded course level. Artifacts are gob-encoded and loaded
// back for inference only; training happens offline.
package pipeline

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"course-forecast-service/internal/ml/textproc"
)

var (
	ErrCorrupt         = errors.New("pipeline: artifact is corrupt")
	ErrSchemaMismatch  = errors.New("pipeline: artifact schema does not match input contract")
	ErrUnknownCategory = errors.New("pipeline: unknown categorical value")
)

// Pipeline is one trained estimator. The feature vector is the
// concatenation [tfidf(title) | scaled numerics | onehot(level)], matched
// by Coef.
type Pipeline struct {
	Schema    []string
	Title     TFIDFVectorizer
	Numeric   MinMaxScaler
	Level     OneHotEncoder
	Coef      []float64
	Intercept float64

	analyzer *textproc.Analyzer
}

// Load decodes a serialized pipeline and validates it against the input
// contract. The analyzer is the process-wide title analyzer; it is
// injected here rather than carried inside the artifact.
func Load(r io.Reader, analyzer *textproc.Analyzer) (*Pipeline, error) {
	var p Pipeline
	if err := gob.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	p.analyzer = analyzer
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Encode writes the pipeline in the artifact wire format.
func (p *Pipeline) Encode(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("encode pipeline: %w", err)
	}
	return nil
}

func (p *Pipeline) validate() error {
	if len(p.Schema) != len(Columns) {
		return ErrSchemaMismatch
	}
	for i, c := range Columns {
		if p.Schema[i] != c {
			return ErrSchemaMismatch
		}
	}
	if len(p.Title.IDF) != len(p.Title.Vocabulary) {
		return fmt.Errorf("%w: vocabulary/idf size mismatch", ErrCorrupt)
	}
	if len(p.Numeric.DataMin) != len(NumericColumns) || len(p.Numeric.DataRange) != len(NumericColumns) {
		return fmt.Errorf("%w: scaler size mismatch", ErrCorrupt)
	}
	want := len(p.Title.IDF) + len(NumericColumns) + len(p.Level.Categories)
	if len(p.Coef) != want {
		return fmt.Errorf("%w: coefficient size mismatch", ErrCorrupt)
	}
	return nil
}

// Predict runs inference on a single row and returns the scalar forecast.
func (p *Pipeline) Predict(row Row) (float64, error) {
	features, err := p.features(row)
	if err != nil {
		return 0, err
	}
	x := mat.NewVecDense(len(features), features)
	w := mat.NewVecDense(len(p.Coef), p.Coef)
	return mat.Dot(x, w) + p.Intercept, nil
}

func (p *Pipeline) features(row Row) ([]float64, error) {
	title := p.Title.Transform(p.analyzer.Tokenize(row.CourseTitle))
	numeric := p.Numeric.Transform(row.numeric())
	level, err := p.Level.Transform(row.Level)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(p.Coef))
	out = append(out, title...)
	out = append(out, numeric...)
	out = append(out, level...)
	return out, nil
}
