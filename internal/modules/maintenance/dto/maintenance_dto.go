package dto

type ScheduleRequest struct {
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	PerformedBy string  `json:"performedBy"`
	Description string  `json:"description"`
}

type UpdateMaintenanceRequest struct {
	Type        *string  `json:"type"`
	Date        *string  `json:"date"`
	Cost        *float64 `json:"cost" binding:"omitempty,gte=0"`
	PerformedBy *string  `json:"performedBy"`
	Description *string  `json:"description"`
}

type DateRangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type StatsResponse struct {
	TotalRecords int64   `json:"totalRecords"`
	TotalCost    float64 `json:"totalCost"`
	AverageCost  float64 `json:"averageCost"`
}
