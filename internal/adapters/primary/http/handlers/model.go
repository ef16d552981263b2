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

func (h *Handler) ListModels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ModelListFilter{
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

	models, total, err := h.modelSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list models failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.MLModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ToMLModelResponse(m))
	}

	c.JSON(http.StatusOK, dto.ListMLModelsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetModel(c *gin.Context) {
	model, err := h.modelSvc.Get(c.Request.Context(), c.Param("endpoint"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMLModelResponse(model))
}

func (h *Handler) CreateModel(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var form dto.CreateModelForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		mapDomainError(c, domain.ErrMissingArtifactFile)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	model, err := h.modelSvc.Create(c.Request.Context(), ownerID, form.Name, form.Version, form.Description, file)
	if err != nil {
		log.WithError(err).Error("create model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMLModelResponse(model))
}

func (h *Handler) UpdateModel(c *gin.Context) {
	var form dto.UpdateModelForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := services.ModelUpdate{
		Name:        form.Name,
		Version:     form.Version,
		Description: form.Description,
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
			return
		}
		defer file.Close()
		upd.File = file
	}

	model, err := h.modelSvc.Update(c.Request.Context(), c.Param("endpoint"), upd)
	if err != nil {
		log.WithError(err).Error("update model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMLModelResponse(model))
}

func (h *Handler) DeleteModel(c *gin.Context) {
	if err := h.modelSvc.Delete(c.Request.Context(), c.Param("endpoint")); err != nil {
		log.WithError(err).Error("delete model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": "model deleted"})
}
