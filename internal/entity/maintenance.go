package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceRecord is one open maintenance cycle for an asset. Completion is
// destructive: the record is deleted when the cycle ends, so any row present
// is an outstanding cycle.
type MaintenanceRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AssetID     uuid.UUID `gorm:"type:uuid;not null;index" json:"assetId"`
	Asset       *Asset    `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Type        string    `gorm:"size:100;not null" json:"type"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `gorm:"type:text" json:"description"`
	Cost        float64   `gorm:"not null;default:0" json:"cost"`
	PerformedBy string    `gorm:"size:200" json:"performedBy"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *MaintenanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}
