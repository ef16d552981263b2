package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
)

// writeRetries caps endpoint re-allocation after the unique index rejects a
// commit (a concurrent writer took the candidate between the snapshot check
// and the write).
const writeRetries = 5

// ModelService orchestrates the MLModel lifecycle: endpoint assignment,
// artifact blob placement and cascading cleanup. Blob mutation is an
// explicit step of each operation, not a side effect of persistence.
type ModelService struct {
	repo  ports.MLModelRepository
	blobs ports.BlobStore
}

func NewModelService(repo ports.MLModelRepository, blobs ports.BlobStore) *ModelService {
	return &ModelService{repo: repo, blobs: blobs}
}

// ModelUpdate carries a partial metadata update. Nil fields keep their
// current value; a nil File keeps the stored artifact.
type ModelUpdate struct {
	Name        *string
	Version     *string
	Description *string
	File        io.Reader
}

func (s *ModelService) Create(ctx context.Context, ownerID uuid.UUID, name, version, description string, file io.Reader) (*domain.MLModel, error) {
	if err := domain.ValidateModel(name, version, description); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.ErrMissingArtifactFile
	}
	blob, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read artifact upload: %w", err)
	}
	if len(blob) == 0 {
		return nil, domain.ErrMissingArtifactFile
	}

	id := uuid.New()
	now := time.Now().UTC()
	base := modelEndpointBase(name, version, now)

	for attempt := 0; attempt < writeRetries; attempt++ {
		endpoint, err := allocateEndpoint(ctx, base, s.endpointTaken(id))
		if err != nil {
			return nil, err
		}

		path := domain.ArtifactPath(endpoint)
		if err := s.blobs.Write(ctx, path, bytes.NewReader(blob)); err != nil {
			return nil, fmt.Errorf("store artifact blob: %w", err)
		}

		model := &domain.MLModel{
			ID:          id,
			CreatedAt:   now,
			OwnerID:     ownerID,
			Name:        name,
			Version:     version,
			Description: description,
			Endpoint:    endpoint,
			FilePath:    path,
		}
		err = s.repo.Create(ctx, model)
		if err == nil {
			return model, nil
		}

		// The row never committed, so the blob must not stay behind.
		if derr := s.blobs.Delete(ctx, path); derr != nil {
			log.WithError(derr).WithField("path", path).Warn("orphaned artifact blob after failed create")
		}
		if !errors.Is(err, domain.ErrEndpointConflict) {
			return nil, err
		}
		// A concurrent writer committed this candidate first; allocate again.
	}
	return nil, domain.ErrEndpointExhausted
}

func (s *ModelService) Get(ctx context.Context, endpoint string) (*domain.MLModel, error) {
	return s.repo.GetByEndpoint(ctx, endpoint)
}

func (s *ModelService) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.MLModel, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

// Update applies a metadata change and keeps endpoint and blob location in
// sync: the endpoint is recomputed from the updated metadata (creation date
// unchanged), a replacement artifact displaces the old blob, and a
// metadata-only change that moves the canonical path relocates the blob.
func (s *ModelService) Update(ctx context.Context, endpoint string, upd ModelUpdate) (*domain.MLModel, error) {
	model, err := s.repo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		model.Name = *upd.Name
	}
	if upd.Version != nil {
		model.Version = *upd.Version
	}
	if upd.Description != nil {
		model.Description = *upd.Description
	}
	if err := domain.ValidateModel(model.Name, model.Version, model.Description); err != nil {
		return nil, err
	}

	var blob []byte
	if upd.File != nil {
		blob, err = io.ReadAll(upd.File)
		if err != nil {
			return nil, fmt.Errorf("read artifact upload: %w", err)
		}
		if len(blob) == 0 {
			return nil, domain.ErrMissingArtifactFile
		}
	}

	base := modelEndpointBase(model.Name, model.Version, model.CreatedAt)
	curPath := model.FilePath
	replaced := false

	for attempt := 0; attempt < writeRetries; attempt++ {
		newEndpoint, err := allocateEndpoint(ctx, base, s.endpointTaken(model.ID))
		if err != nil {
			return nil, err
		}
		newPath := domain.ArtifactPath(newEndpoint)

		switch {
		case blob != nil && !replaced:
			// Replacement artifact: the old blob goes before the new one
			// lands at the canonical path.
			if curPath != newPath {
				if err := s.blobs.Delete(ctx, curPath); err != nil {
					return nil, fmt.Errorf("delete replaced artifact blob: %w", err)
				}
			}
			if err := s.blobs.Write(ctx, newPath, bytes.NewReader(blob)); err != nil {
				return nil, fmt.Errorf("store artifact blob: %w", err)
			}
			curPath = newPath
			replaced = true
		case curPath != newPath:
			// Metadata moved the canonical path; the blob follows.
			if err := s.blobs.Rename(ctx, curPath, newPath); err != nil {
				return nil, fmt.Errorf("relocate artifact blob: %w", err)
			}
			curPath = newPath
		}

		model.Endpoint = newEndpoint
		model.FilePath = newPath
		err = s.repo.Update(ctx, model)
		if err == nil {
			return model, nil
		}
		if !errors.Is(err, domain.ErrEndpointConflict) {
			return nil, err
		}
	}
	return nil, domain.ErrEndpointExhausted
}

// Delete removes the row (prediction requests referencing the model cascade
// in the database) and then the blob. Blob removal is best effort: a
// confirmed delete never resurrects the row over a storage hiccup.
func (s *ModelService) Delete(ctx context.Context, endpoint string) error {
	model, err := s.repo.GetByEndpoint(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, model.ID); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, model.FilePath); err != nil {
		log.WithError(err).WithField("path", model.FilePath).Warn("failed to remove artifact blob after delete")
	}
	return nil
}

func (s *ModelService) endpointTaken(excludeID uuid.UUID) takenFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.EndpointTaken(ctx, candidate, excludeID)
	}
}
