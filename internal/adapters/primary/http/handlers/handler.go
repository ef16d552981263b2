package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/services"
)

type Handler struct {
	modelSvc   *services.ModelService
	requestSvc *services.RequestService
}

func New(modelSvc *services.ModelService, requestSvc *services.RequestService) *Handler {
	return &Handler{
		modelSvc:   modelSvc,
		requestSvc: requestSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// ML Models
	r.GET("/models", h.ListModels)
	r.POST("/models", h.CreateModel)
	r.GET("/models/:endpoint", h.GetModel)
	r.PATCH("/models/:endpoint", h.UpdateModel)
	r.DELETE("/models/:endpoint", h.DeleteModel)

	// Prediction Requests
	r.GET("/requests", h.ListRequests)
	r.POST("/requests", h.CreateRequest)
	r.GET("/requests/:endpoint", h.GetRequest)
	r.PATCH("/requests/:endpoint", h.UpdateRequest)
	r.DELETE("/requests/:endpoint", h.DeleteRequest)
}

// getUserID reads the authenticated principal forwarded by the auth layer.
func getUserID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return uuid.Nil, domain.ErrMissingUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrMissingUserID
	}
	return id, nil
}
