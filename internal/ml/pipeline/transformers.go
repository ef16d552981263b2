package pipeline

import (
	"math"
)

// TFIDFVectorizer maps an analyzed token sequence onto the training
// vocabulary: term count times inverse document frequency, then
// L2-normalized. Tokens outside the vocabulary are ignored.
type TFIDFVectorizer struct {
	// Vocabulary maps token to its feature index in [0, len(IDF)).
	Vocabulary map[string]int
	// IDF holds the inverse-document-frequency weight per feature index.
	IDF []float64
}

func (v *TFIDFVectorizer) Transform(tokens []string) []float64 {
	out := make([]float64, len(v.IDF))
	for _, tok := range tokens {
		if idx, ok := v.Vocabulary[tok]; ok {
			out[idx] += v.IDF[idx]
		}
	}

	var norm float64
	for _, x := range out {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}

// MinMaxScaler rescales numeric features into the training range:
// (x - min) / (max - min). A constant training column has zero range and
// passes through as zero offset from the minimum.
type MinMaxScaler struct {
	DataMin   []float64
	DataRange []float64
}

func (s *MinMaxScaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if s.DataRange[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = (v - s.DataMin[i]) / s.DataRange[i]
	}
	return out
}

// OneHotEncoder expands a categorical value into indicator features, one
// per training category. Unknown categories are an error, not a zero row:
// they mean the request contract and the artifact disagree.
type OneHotEncoder struct {
	Categories []string
}

func (e *OneHotEncoder) Transform(value string) ([]float64, error) {
	out := make([]float64, len(e.Categories))
	for i, c := range e.Categories {
		if c == value {
			out[i] = 1
			return out, nil
		}
	}
	return nil, ErrUnknownCategory
}
