package domain

import "errors"

// ============================================================================
// Not found errors
// ============================================================================

var (
	ErrModelNotFound   = errors.New("ml model not found")
	ErrRequestNotFound = errors.New("prediction request not found")
)

// ============================================================================
// Validation errors
// ============================================================================

var (
	ErrInvalidModelName        = errors.New("model name is required and must be at most 128 characters")
	ErrInvalidVersion          = errors.New("model version is required and must be at most 16 characters")
	ErrDescriptionTooLong      = errors.New("model description must be at most 1000 characters")
	ErrInvalidCourseTitle      = errors.New("course title is required and must be at most 128 characters")
	ErrPriceOutOfRange         = errors.New("course price has to be in range 20-200$ (Udemy limits)")
	ErrContentDurationTooShort = errors.New("course should be at least 1 hour long")
	ErrNumLecturesTooFew       = errors.New("course should have at least 1 lecture")
	ErrDaysTooFew              = errors.New("days to predict must be at least 1")
	ErrInvalidLevel            = errors.New("level must be one of the defined course levels")
	ErrMissingUserID           = errors.New("user ID is required (X-User-ID header)")
	ErrMissingArtifactFile     = errors.New("model artifact file is required")
)

// ============================================================================
// Conflict errors
// ============================================================================

var (
	// ErrEndpointConflict is returned by repositories when the unique index
	// on endpoint rejects a write. Services retry allocation with the next
	// suffix instead of surfacing it.
	ErrEndpointConflict = errors.New("endpoint already taken")

	// ErrEndpointExhausted means the allocator gave up after the retry cap.
	ErrEndpointExhausted = errors.New("endpoint allocation exhausted retries")
)

// ============================================================================
// Storage and inference errors
// ============================================================================

var (
	// ErrArtifactUnreadable wraps blob-read or decode failures during
	// prediction. The save that triggered it is aborted.
	ErrArtifactUnreadable = errors.New("model artifact is missing or corrupt")

	// ErrEstimatorInput means the deserialized estimator rejected the
	// feature row, which indicates a schema drift between the artifact and
	// the request contract.
	ErrEstimatorInput = errors.New("estimator rejected the feature row")
)
