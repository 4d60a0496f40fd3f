package dto

import (
	"github.com/oretina/assettrack/internal/entity"
	commonDto "github.com/oretina/assettrack/pkg/dto"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt int64        `json:"expiresAt"`
}

// CreateUserRequest is the admin-facing create; registration uses
// RegisterRequest. Both share the 8 character password floor.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN MANAGER EMPLOYEE"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN MANAGER EMPLOYEE"`
	Status   *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Password *string `json:"password"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN MANAGER EMPLOYEE"`
}

// ChangePasswordRequest deliberately uses a 6 character floor, not the 8
// applied at account creation; the two limits differ in the product contract.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type PaginatedUserResponse struct {
	Data       []*entity.User       `json:"data"`
	Pagination commonDto.Pagination `json:"pagination"`
}
