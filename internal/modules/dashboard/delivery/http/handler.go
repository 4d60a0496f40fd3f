package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/internal/modules/dashboard/service"
	"github.com/oretina/assettrack/pkg/response"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *DashboardHandler) AssetsByCategory(c *gin.Context) {
	rows, err := h.service.AssetsByCategory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}

func (h *DashboardHandler) AssetsByStatus(c *gin.Context) {
	rows, err := h.service.AssetsByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows)
}
