package domain

import (
	"time"

	"github.com/google/uuid"
)

// MLModel represents a registered regression algorithm. The serialized
// estimator itself lives in blob storage at FilePath; the row only carries
// the reference.
type MLModel struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	OwnerID     uuid.UUID
	Name        string
	Version     string
	Description string

	// Endpoint is the unique external lookup key,
	// derived from (name, version, created_at date).
	Endpoint string

	// FilePath is the canonical blob location. Invariant:
	// FilePath == ArtifactPath(Endpoint) after every committed save.
	FilePath string
}

// ArtifactPath returns the canonical blob path for a model endpoint.
func ArtifactPath(endpoint string) string {
	return "models/algorithms/" + endpoint
}

const (
	MaxModelNameLen   = 128
	MaxVersionLen     = 16
	MaxDescriptionLen = 1000
)

// ValidateModel checks the metadata invariants of an MLModel before it is
// handed to the lifecycle manager.
func ValidateModel(name, version, description string) error {
	if name == "" || len(name) > MaxModelNameLen {
		return ErrInvalidModelName
	}
	if version == "" || len(version) > MaxVersionLen {
		return ErrInvalidVersion
	}
	if len(description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}
