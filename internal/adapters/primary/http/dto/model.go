package dto

import (
	"time"

	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
)

// CreateModelForm is the multipart metadata of a model upload; the artifact
// itself travels in the "file" part.
type CreateModelForm struct {
	Name        string `form:"name" binding:"required,max=128"`
	Version     string `form:"version" binding:"required,max=16"`
	Description string `form:"description" binding:"max=1000"`
}

type UpdateModelForm struct {
	Name        *string `form:"name"`
	Version     *string `form:"version"`
	Description *string `form:"description"`
}

type MLModelResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   string    `json:"created_at"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Endpoint    string    `json:"endpoint"`
}

func ToMLModelResponse(m *domain.MLModel) MLModelResponse {
	return MLModelResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Endpoint:    m.Endpoint,
	}
}

type ListMLModelsResponse struct {
	Items      []MLModelResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}
