package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oretina/assettrack/internal/modules/maintenance/dto"
	"github.com/oretina/assettrack/internal/modules/maintenance/service"
	"github.com/oretina/assettrack/pkg/apperror"
	"github.com/oretina/assettrack/pkg/response"
	"github.com/oretina/assettrack/pkg/validator"
)

type MaintenanceHandler struct {
	service service.MaintenanceService
}

func NewMaintenanceHandler(service service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

func (h *MaintenanceHandler) ListAll(c *gin.Context) {
	records, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

func (h *MaintenanceHandler) ListByAsset(c *gin.Context) {
	assetID, err := parseID(c, "assetId")
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.service.ListByAsset(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

func (h *MaintenanceHandler) ListByDateRange(c *gin.Context) {
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	start, err := parseQueryDate(q.Start)
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseQueryDate(q.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	records, err := h.service.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	assetID, err := parseID(c, "assetId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	record, err := h.service.Schedule(c.Request.Context(), assetID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, record)
}

func (h *MaintenanceHandler) Complete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Complete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "maintenance completed, asset is active again"})
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "maintenance record deleted"})
}

// Stats serves both /maintenance/stats and /maintenance/stats/:assetId.
func (h *MaintenanceHandler) Stats(c *gin.Context) {
	var assetID *uuid.UUID
	if raw := c.Param("assetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.New(apperror.ErrInvalidInput, "invalid id format"))
			return
		}
		assetID = &id
	}

	stats, err := h.service.Stats(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
