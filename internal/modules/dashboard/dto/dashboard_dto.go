package dto

import maintenanceDto "github.com/oretina/assettrack/internal/modules/maintenance/dto"

type StatsResponse struct {
	TotalAssets       int64                         `json:"totalAssets"`
	ActiveAssets      int64                         `json:"activeAssets"`
	MaintenanceDue    int64                         `json:"maintenanceDue"`
	InactiveAssets    int64                         `json:"inactiveAssets"`
	TotalValue        float64                       `json:"totalValue"`
	TotalMaintenance  int64                         `json:"totalMaintenance"`
	RecentMaintenance int64                         `json:"recentMaintenance"`
	MaintenanceCost   *maintenanceDto.StatsResponse `json:"maintenanceCost"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
