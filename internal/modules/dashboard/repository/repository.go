package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/dashboard/dto"
)

// DashboardRepository is read-only aggregation over assets and maintenance
// records; it never mutates anything.
type DashboardRepository interface {
	CountAssets(ctx context.Context) (int64, error)
	CountAssetsWithStatus(ctx context.Context, status string) (int64, error)
	SumPurchasePrice(ctx context.Context) (float64, error)
	CountMaintenance(ctx context.Context) (int64, error)
	CountMaintenanceSince(ctx context.Context, since time.Time) (int64, error)
	GroupAssetsByCategory(ctx context.Context) ([]dto.CategoryCount, error)
	GroupAssetsByStatus(ctx context.Context) ([]dto.StatusCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountAssets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Asset{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountAssetsWithStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) SumPurchasePrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Select("COALESCE(SUM(purchase_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) CountMaintenance(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MaintenanceRecord{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountMaintenanceSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.MaintenanceRecord{}).
		Where("date >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) GroupAssetsByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	var rows []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) GroupAssetsByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	err := r.db.WithContext(ctx).
		Model(&entity.Asset{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&rows).Error
	return rows, err
}
