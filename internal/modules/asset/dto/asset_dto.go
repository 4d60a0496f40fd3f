package dto

import (
	"github.com/oretina/assettrack/internal/entity"
	commonDto "github.com/oretina/assettrack/pkg/dto"
)

// AssetFilter is bound from the list endpoint's query string.
type AssetFilter struct {
	commonDto.PaginationQuery
	Status   string `form:"status"`
	Category string `form:"category"`
	Location string `form:"location"`
}

type CreateAssetRequest struct {
	Name          string  `json:"name" binding:"required"`
	AssetTag      string  `json:"assetTag" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	DeviceName    *string `json:"deviceName"`
	SerialNumber  *string `json:"serialNumber"`
	UserAssigned  *string `json:"userAssigned"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice" binding:"gte=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE MAINTENANCE RETIRED"`
	Description   string  `json:"description"`
	RAM           *string `json:"ram"`
	Storage       *string `json:"storage"`
	Processor     *string `json:"processor"`
}

// UpdateAssetRequest carries partial updates: nil means "leave unchanged",
// an empty string on an optional field clears it.
type UpdateAssetRequest struct {
	Name          *string  `json:"name"`
	AssetTag      *string  `json:"assetTag"`
	Category      *string  `json:"category"`
	Location      *string  `json:"location"`
	DeviceName    *string  `json:"deviceName"`
	SerialNumber  *string  `json:"serialNumber"`
	UserAssigned  *string  `json:"userAssigned"`
	PurchaseDate  *string  `json:"purchaseDate"`
	PurchasePrice *float64 `json:"purchasePrice" binding:"omitempty,gte=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE MAINTENANCE RETIRED"`
	Description   *string  `json:"description"`
	RAM           *string  `json:"ram"`
	Storage       *string  `json:"storage"`
	Processor     *string  `json:"processor"`
}

type AssignRequest struct {
	UserAssigned string `json:"userAssigned" binding:"required"`
}

type PaginatedAssetResponse struct {
	Data       []*entity.Asset      `json:"data"`
	Pagination commonDto.Pagination `json:"pagination"`
}
