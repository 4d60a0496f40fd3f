package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/internal/modules/user/dto"
	"github.com/oretina/assettrack/internal/modules/user/service"
	"github.com/oretina/assettrack/pkg/apperror"
	"github.com/oretina/assettrack/pkg/response"
	"github.com/oretina/assettrack/pkg/validator"
)

type AuthHandler struct {
	service service.UserService
}

func NewAuthHandler(service service.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Verify echoes the identity decoded by the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"userId": claims.UserID,
			"email":  claims.Email,
			"name":   claims.Name,
			"role":   claims.Role,
		},
	})
}
