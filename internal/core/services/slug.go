package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
)

// maxEndpointAttempts caps the collision-resolution loop so a pathological
// collision storm surfaces domain.ErrEndpointExhausted instead of spinning.
const maxEndpointAttempts = 1000

// takenFunc reports whether a candidate endpoint is already held by another
// record. Implementations must exclude the record being saved so an
// unchanged re-save does not collide with itself.
type takenFunc func(ctx context.Context, candidate string) (bool, error)

// allocateEndpoint resolves a unique endpoint for base. It tries base
// first, then base_1, base_2, and so on; each round regenerates the
// candidate from base, so a suffix from a previous round is replaced, never
// stacked.
func allocateEndpoint(ctx context.Context, base string, taken takenFunc) (string, error) {
	candidate := base
	for n := 1; n <= maxEndpointAttempts; n++ {
		exists, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("endpoint uniqueness check: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, n)
	}
	return "", domain.ErrEndpointExhausted
}

// modelEndpointBase builds the deterministic endpoint base of a model:
// <name>_<version>_<creation date>.
func modelEndpointBase(name, version string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%s_%s", name, version, createdAt.Format("2006-01-02"))
}

// requestEndpointBase builds the deterministic endpoint base of a
// prediction request: <title, lower, spaces to dashes>_<algorithm
// id>_<days>_<creation date>.
func requestEndpointBase(courseTitle string, algorithmID uuid.UUID, days int, createdAt time.Time) string {
	title := strings.ReplaceAll(strings.ToLower(courseTitle), " ", "-")
	return fmt.Sprintf("%s_%s_%d_%s", title, algorithmID, days, createdAt.Format("2006-01-02"))
}
