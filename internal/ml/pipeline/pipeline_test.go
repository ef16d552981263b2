package pipeline

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-forecast-service/internal/ml/textproc"
)

func testAnalyzer() *textproc.Analyzer {
	return textproc.NewAnalyzer(textproc.EnglishStopwords())
}

// testPipeline builds a tiny but structurally complete estimator:
// two title terms, identity-range numeric scaling and the four course
// levels.
func testPipeline() *Pipeline {
	return &Pipeline{
		Schema: Columns,
		Title: TFIDFVectorizer{
			Vocabulary: map[string]int{"python": 0, "bootcamp": 1},
			IDF:        []float64{1, 1},
		},
		Numeric: MinMaxScaler{
			DataMin:   []float64{20, 1, 1, 1},
			DataRange: []float64{180, 99, 99, 729},
		},
		Level: OneHotEncoder{
			Categories: []string{"All Levels", "Beginner Level", "Intermediate Level", "Expert Level"},
		},
		// 2 title + 4 numeric + 4 level coefficients.
		Coef:      []float64{10, 20, 0, 0, 0, 0, 100, 0, 0, 0},
		Intercept: 5,
	}
}

func testRow() Row {
	return Row{
		CourseTitle:     "complete python bootcamp",
		Price:           20,
		ContentDuration: 1,
		NumLectures:     1,
		Days:            1,
		Level:           "All Levels",
	}
}

func TestPipeline_Predict(t *testing.T) {
	p := testPipeline()
	p.analyzer = testAnalyzer()

	// Title tokens: [complet python bootcamp]; "complet" is out of
	// vocabulary. TF-IDF is L2-normalized, so python and bootcamp each
	// contribute 1/sqrt(2). Numerics sit at the training minimum (all
	// zero after scaling) and "All Levels" fires the 100 coefficient.
	got, err := p.Predict(testRow())
	require.NoError(t, err)

	want := 10/math.Sqrt2 + 20/math.Sqrt2 + 100 + 5
	assert.InDelta(t, want, got, 1e-9)
}

func TestPipeline_Predict_ScaledNumerics(t *testing.T) {
	p := testPipeline()
	p.analyzer = testAnalyzer()
	p.Coef = []float64{0, 0, 1, 0, 0, 0, 0, 0, 0, 0}
	p.Intercept = 0

	row := testRow()
	row.CourseTitle = "untitled"
	row.Price = 110 // (110-20)/180 = 0.5

	got, err := p.Predict(row)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestPipeline_Predict_UnknownLevel(t *testing.T) {
	p := testPipeline()
	p.analyzer = testAnalyzer()

	row := testRow()
	row.Level = "Guru Level"

	_, err := p.Predict(row)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPipeline_EncodeLoadRoundTrip(t *testing.T) {
	p := testPipeline()

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	loaded, err := Load(&buf, testAnalyzer())
	require.NoError(t, err)

	want, err := func() (float64, error) {
		p.analyzer = testAnalyzer()
		return p.Predict(testRow())
	}()
	require.NoError(t, err)

	got, err := loaded.Predict(testRow())
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestLoad_CorruptArtifact(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a gob stream")), testAnalyzer())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	p := testPipeline()
	p.Schema = []string{"price", "course_title", "content_duration", "num_lectures", "days", "level"}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	_, err := Load(&buf, testAnalyzer())
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestLoad_CoefSizeMismatch(t *testing.T) {
	p := testPipeline()
	p.Coef = []float64{1, 2}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	_, err := Load(&buf, testAnalyzer())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMinMaxScaler_ZeroRangeColumn(t *testing.T) {
	s := MinMaxScaler{DataMin: []float64{5}, DataRange: []float64{0}}
	assert.Equal(t, []float64{0}, s.Transform([]float64{5}))
}

func TestTFIDFVectorizer_IgnoresOutOfVocabulary(t *testing.T) {
	v := TFIDFVectorizer{Vocabulary: map[string]int{"python": 0}, IDF: []float64{2}}

	got := v.Transform([]string{"rust", "haskell"})
	assert.Equal(t, []float64{0}, got)
}

func TestTFIDFVectorizer_L2Normalized(t *testing.T) {
	v := TFIDFVectorizer{
		Vocabulary: map[string]int{"go": 0, "web": 1},
		IDF:        []float64{3, 4},
	}

	got := v.Transform([]string{"go", "web"})
	assert.InDelta(t, 0.6, got[0], 1e-9)
	assert.InDelta(t, 0.8, got[1], 1e-9)

	var norm float64
	for _, x := range got {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}
