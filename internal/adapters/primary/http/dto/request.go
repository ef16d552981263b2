package dto

import (
	"time"

	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
)

type CreatePredictionRequest struct {
	CourseTitle     string    `json:"course_title" binding:"required,max=128"`
	Price           float64   `json:"price" binding:"required"`
	ContentDuration float64   `json:"content_duration" binding:"required"`
	NumLectures     int       `json:"num_lectures" binding:"required"`
	Level           string    `json:"level"`
	Days            int       `json:"days" binding:"required"`
	AlgorithmID     uuid.UUID `json:"algorithm_id" binding:"required"`
}

type UpdatePredictionRequest struct {
	CourseTitle     *string    `json:"course_title"`
	Price           *float64   `json:"price"`
	ContentDuration *float64   `json:"content_duration"`
	NumLectures     *int       `json:"num_lectures"`
	Level           *string    `json:"level"`
	Days            *int       `json:"days"`
	AlgorithmID     *uuid.UUID `json:"algorithm_id"`
}

type PredictionRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       string    `json:"created_at"`
	OwnerID         uuid.UUID `json:"owner_id"`
	CourseTitle     string    `json:"course_title"`
	Price           float64   `json:"price"`
	ContentDuration float64   `json:"content_duration"`
	NumLectures     int       `json:"num_lectures"`
	Level           string    `json:"level"`
	Days            int       `json:"days"`
	Prediction      float64   `json:"prediction"`
	AlgorithmID     uuid.UUID `json:"algorithm_id"`
	Endpoint        string    `json:"endpoint"`
}

func ToPredictionRequestResponse(r *domain.PredictionRequest) PredictionRequestResponse {
	return PredictionRequestResponse{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		OwnerID:         r.OwnerID,
		CourseTitle:     r.CourseTitle,
		Price:           r.Price,
		ContentDuration: r.ContentDuration,
		NumLectures:     r.NumLectures,
		Level:           string(r.Level),
		Days:            r.Days,
		Prediction:      r.Prediction,
		AlgorithmID:     r.AlgorithmID,
		Endpoint:        r.Endpoint,
	}
}

type ListPredictionRequestsResponse struct {
	Items      []PredictionRequestResponse `json:"items"`
	Total      int                         `json:"total"`
	PageSize   int                         `json:"page_size"`
	NextOffset int                         `json:"next_offset"`
}
