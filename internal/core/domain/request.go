package domain

import (
	"time"

	"github.com/google/uuid"
)

// Level is the course experience level, a closed categorical set. The
// serialized estimators one-hot encode it, so the literal strings are part
// of the prediction contract.
type Level string

const (
	LevelAll          Level = "All Levels"
	LevelBeginner     Level = "Beginner Level"
	LevelIntermediate Level = "Intermediate Level"
	LevelExpert       Level = "Expert Level"
)

func (l Level) Valid() bool {
	switch l {
	case LevelAll, LevelBeginner, LevelIntermediate, LevelExpert:
		return true
	}
	return false
}

// Levels lists every valid course level.
func Levels() []Level {
	return []Level{LevelAll, LevelBeginner, LevelIntermediate, LevelExpert}
}

// PredictionRequest is a persisted prediction record. Prediction and
// Endpoint are always populated before the row is written; there is no
// unpredicted state.
type PredictionRequest struct {
	ID        uuid.UUID
	CreatedAt time.Time
	OwnerID   uuid.UUID

	// Input fields. CourseTitle is stored lower-cased.
	CourseTitle     string
	Price           float64
	ContentDuration float64
	NumLectures     int
	Level           Level
	Days            int

	// Prediction is the forecast number of subscribers after Days days,
	// rounded to the nearest integer by the invoker.
	Prediction float64

	// AlgorithmID references the MLModel used; deleting the model cascades
	// to its requests.
	AlgorithmID uuid.UUID

	// Endpoint is the unique external lookup key, derived from
	// (course_title, algorithm_id, days, created_at date).
	Endpoint string
}

// Input validation bounds. The HTTP layer binds and type-checks the
// payload; these are the business limits the core enforces loudly rather
// than clamping (Udemy pricing limits).
const (
	MinPrice           = 20.0
	MaxPrice           = 200.0
	MinContentDuration = 1.0
	MinNumLectures     = 1
	MinDays            = 1
	MaxCourseTitleLen  = 128
)

// RequestInput is the validated feature payload for a prediction request.
type RequestInput struct {
	CourseTitle     string
	Price           float64
	ContentDuration float64
	NumLectures     int
	Level           Level
	Days            int
}

// Validate rejects out-of-contract inputs. Callers must not persist or
// invoke prediction on a payload that fails here.
func (in RequestInput) Validate() error {
	if in.CourseTitle == "" || len(in.CourseTitle) > MaxCourseTitleLen {
		return ErrInvalidCourseTitle
	}
	if in.Price < MinPrice || in.Price > MaxPrice {
		return ErrPriceOutOfRange
	}
	if in.ContentDuration < MinContentDuration {
		return ErrContentDurationTooShort
	}
	if in.NumLectures < MinNumLectures {
		return ErrNumLecturesTooFew
	}
	if in.Days < MinDays {
		return ErrDaysTooFew
	}
	if !in.Level.Valid() {
		return ErrInvalidLevel
	}
	return nil
}
