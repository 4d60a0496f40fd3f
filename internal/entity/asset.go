package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssetStatusActive      = "ACTIVE"
	AssetStatusInactive    = "INACTIVE"
	AssetStatusMaintenance = "MAINTENANCE"
	AssetStatusRetired     = "RETIRED"
)

// Asset is a tracked physical item. UserAssigned is a plain display name, not
// a foreign key: an assignee does not have to be a registered user, and user
// renames or deletions never cascade here.
type Asset struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	AssetTag      string    `gorm:"size:100;uniqueIndex;not null" json:"assetTag"`
	DeviceName    *string   `gorm:"size:200" json:"deviceName"`
	SerialNumber  *string   `gorm:"size:100" json:"serialNumber"`
	Category      string    `gorm:"size:100;not null;index" json:"category"`
	Location      string    `gorm:"size:200;not null" json:"location"`
	UserAssigned  *string   `gorm:"size:200" json:"userAssigned"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	PurchasePrice float64   `gorm:"not null;default:0" json:"purchasePrice"`
	Status        string    `gorm:"size:20;not null;default:ACTIVE;index" json:"status"`
	Description   string    `gorm:"type:text" json:"description"`
	RAM           *string   `gorm:"column:ram;size:100" json:"ram"`
	Storage       *string   `gorm:"size:100" json:"storage"`
	Processor     *string   `gorm:"size:100" json:"processor"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	MaintenanceRecords []MaintenanceRecord `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"maintenanceRecords,omitempty"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}
