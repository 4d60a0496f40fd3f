package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oretina/assettrack/internal/modules/asset/dto"
	"github.com/oretina/assettrack/internal/modules/asset/service"
	"github.com/oretina/assettrack/pkg/apperror"
	"github.com/oretina/assettrack/pkg/response"
	"github.com/oretina/assettrack/pkg/validator"
)

type AssetHandler struct {
	service service.AssetService
}

func NewAssetHandler(service service.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) List(c *gin.Context) {
	var filter dto.AssetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *AssetHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	asset, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, asset)
}

func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	asset, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, asset)
}

func (h *AssetHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	asset, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "asset deleted successfully"})
}

func (h *AssetHandler) Search(c *gin.Context) {
	query := c.Param("query")

	assets, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, assets)
}

func (h *AssetHandler) Assign(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	asset, err := h.service.Assign(c.Request.Context(), id, req.UserAssigned)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, asset)
}

func (h *AssetHandler) Unassign(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	asset, err := h.service.Unassign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, asset)
}

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.ErrInvalidInput, "invalid id format")
	}
	return id, nil
}
