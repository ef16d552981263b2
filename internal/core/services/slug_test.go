package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"course-forecast-service/internal/core/domain"
)

// takenSet builds a takenFunc over a fixed set of existing endpoints.
func takenSet(existing ...string) takenFunc {
	set := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		set[e] = struct{}{}
	}
	return func(_ context.Context, candidate string) (bool, error) {
		_, ok := set[candidate]
		return ok, nil
	}
}

func TestAllocateEndpoint_NoConflict(t *testing.T) {
	got, err := allocateEndpoint(context.Background(), "SVR_V1_2020-06-19", takenSet())
	assert.NoError(t, err)
	assert.Equal(t, "SVR_V1_2020-06-19", got)
}

func TestAllocateEndpoint_SingleConflict(t *testing.T) {
	got, err := allocateEndpoint(context.Background(), "SVR_V1_2020-06-19",
		takenSet("SVR_V1_2020-06-19"))
	assert.NoError(t, err)
	assert.Equal(t, "SVR_V1_2020-06-19_1", got)
}

func TestAllocateEndpoint_ReplacesSuffixInsteadOfStacking(t *testing.T) {
	got, err := allocateEndpoint(context.Background(), "SVR_V1_2020-06-19",
		takenSet("SVR_V1_2020-06-19", "SVR_V1_2020-06-19_1"))
	assert.NoError(t, err)
	assert.Equal(t, "SVR_V1_2020-06-19_2", got)
}

func TestAllocateEndpoint_ManyConflicts(t *testing.T) {
	existing := []string{"base"}
	for i := 1; i <= 40; i++ {
		existing = append(existing, "base_"+strconv.Itoa(i))
	}
	got, err := allocateEndpoint(context.Background(), "base", takenSet(existing...))
	assert.NoError(t, err)
	assert.Equal(t, "base_41", got)
}

func TestAllocateEndpoint_Exhausted(t *testing.T) {
	always := func(context.Context, string) (bool, error) { return true, nil }
	_, err := allocateEndpoint(context.Background(), "base", always)
	assert.ErrorIs(t, err, domain.ErrEndpointExhausted)
}

func TestAllocateEndpoint_CheckError(t *testing.T) {
	boom := func(context.Context, string) (bool, error) { return false, assert.AnError }
	_, err := allocateEndpoint(context.Background(), "base", boom)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestModelEndpointBase(t *testing.T) {
	createdAt := time.Date(2020, 6, 19, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "SVR_V1_2020-06-19", modelEndpointBase("SVR", "V1", createdAt))
}

func TestRequestEndpointBase(t *testing.T) {
	createdAt := time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC)
	algorithmID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got := requestEndpointBase("Django Web Course", algorithmID, 365, createdAt)
	assert.Equal(t, "django-web-course_6ba7b810-9dad-11d1-80b4-00c04fd430c8_365_2021-03-02", got)
}
