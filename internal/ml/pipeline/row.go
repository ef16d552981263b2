package pipeline

// Columns is the fixed input schema of every serialized estimator, in
// order. Names and order are contractual: artifacts record the schema they
// were trained with and loading fails on any mismatch.
var Columns = []string{
	"course_title",
	"price",
	"content_duration",
	"num_lectures",
	"days",
	"level",
}

// NumericColumns are the Columns entries scaled by the pipeline's min-max
// scaler, in the order they appear in the feature vector.
var NumericColumns = []string{"price", "content_duration", "num_lectures", "days"}

// Row is a single-row tabular record for inference. It wraps the validated
// request fields without transformation; type coercion matches what the
// estimator input expects (title string, numeric float/int, level
// categorical string).
type Row struct {
	CourseTitle     string
	Price           float64
	ContentDuration float64
	NumLectures     int
	Days            int
	Level           string
}

// numeric returns the row's numeric features in NumericColumns order.
func (r Row) numeric() []float64 {
	return []float64{r.Price, r.ContentDuration, float64(r.NumLectures), float64(r.Days)}
}
