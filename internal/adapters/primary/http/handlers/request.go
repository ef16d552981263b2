package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"course-forecast-service/internal/adapters/primary/http/dto"
	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
	"course-forecast-service/internal/core/services"
)

func (h *Handler) ListRequests(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.RequestListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("owner"); raw != "" {
		owner, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
			return
		}
		filter.OwnerID = &owner
	}
	if raw := c.Query("algorithm_id"); raw != "" {
		algorithm, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid algorithm id"})
			return
		}
		filter.AlgorithmID = &algorithm
	}

	reqs, total, err := h.requestSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list requests failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PredictionRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, dto.ToPredictionRequestResponse(r))
	}

	c.JSON(http.StatusOK, dto.ListPredictionRequestsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetRequest(c *gin.Context) {
	req, err := h.requestSvc.Get(c.Request.Context(), c.Param("endpoint"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionRequestResponse(req))
}

func (h *Handler) CreateRequest(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var body dto.CreatePredictionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := domain.Level(body.Level)
	if body.Level == "" {
		level = domain.LevelAll
	}

	in := domain.RequestInput{
		CourseTitle:     body.CourseTitle,
		Price:           body.Price,
		ContentDuration: body.ContentDuration,
		NumLectures:     body.NumLectures,
		Level:           level,
		Days:            body.Days,
	}

	req, err := h.requestSvc.Create(c.Request.Context(), ownerID, body.AlgorithmID, in)
	if err != nil {
		log.WithError(err).Error("create prediction request failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPredictionRequestResponse(req))
}

func (h *Handler) UpdateRequest(c *gin.Context) {
	var body dto.UpdatePredictionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := services.RequestUpdate{
		CourseTitle:     body.CourseTitle,
		Price:           body.Price,
		ContentDuration: body.ContentDuration,
		NumLectures:     body.NumLectures,
		Days:            body.Days,
		AlgorithmID:     body.AlgorithmID,
	}
	if body.Level != nil {
		level := domain.Level(*body.Level)
		upd.Level = &level
	}

	req, err := h.requestSvc.Update(c.Request.Context(), c.Param("endpoint"), upd)
	if err != nil {
		log.WithError(err).Error("update prediction request failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionRequestResponse(req))
}

func (h *Handler) DeleteRequest(c *gin.Context) {
	if err := h.requestSvc.Delete(c.Request.Context(), c.Param("endpoint")); err != nil {
		log.WithError(err).Error("delete prediction request failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": "prediction request deleted"})
}
