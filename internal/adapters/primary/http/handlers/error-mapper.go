package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-forecast-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrEndpointConflict),
		errors.Is(err, domain.ErrEndpointExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidVersion),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrInvalidCourseTitle),
		errors.Is(err, domain.ErrPriceOutOfRange),
		errors.Is(err, domain.ErrContentDurationTooShort),
		errors.Is(err, domain.ErrNumLecturesTooFew),
		errors.Is(err, domain.ErrDaysTooFew),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrMissingUserID),
		errors.Is(err, domain.ErrMissingArtifactFile),
		errors.Is(err, domain.ErrEstimatorInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
