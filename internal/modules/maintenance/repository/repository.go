package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
)

type MaintenanceRepository interface {
	FindAll(ctx context.Context) ([]*entity.MaintenanceRecord, error)
	FindByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.MaintenanceRecord, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error)
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// Schedule creates the record and moves the asset to MAINTENANCE in one
	// transaction; Complete moves the asset back to ACTIVE and deletes the
	// record the same way. Partial application is impossible by construction.
	Schedule(ctx context.Context, record *entity.MaintenanceRecord) error
	Complete(ctx context.Context, record *entity.MaintenanceRecord) error

	Update(ctx context.Context, record *entity.MaintenanceRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, assetID *uuid.UUID) (count int64, totalCost float64, err error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) FindAll(ctx context.Context) ([]*entity.MaintenanceRecord, error) {
	var records []*entity.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Preload("Asset").
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) FindByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	var records []*entity.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Preload("Asset").
		Where("asset_id = ?", assetID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceRecord, error) {
	var records []*entity.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error) {
	var record entity.MaintenanceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *maintenanceRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.MaintenanceRecord{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *maintenanceRepository) Schedule(ctx context.Context, record *entity.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Asset{}).
			Where("id = ?", record.AssetID).
			Update("status", entity.AssetStatusMaintenance).Error
	})
}

func (r *maintenanceRepository) Complete(ctx context.Context, record *entity.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Asset{}).
			Where("id = ?", record.AssetID).
			Update("status", entity.AssetStatusActive).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MaintenanceRecord{}, "id = ?", record.ID).Error
	})
}

func (r *maintenanceRepository) Update(ctx context.Context, record *entity.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *maintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MaintenanceRecord{}, "id = ?", id).Error
}

func (r *maintenanceRepository) Stats(ctx context.Context, assetID *uuid.UUID) (int64, float64, error) {
	query := r.db.WithContext(ctx).Model(&entity.MaintenanceRecord{})
	if assetID != nil {
		query = query.Where("asset_id = ?", assetID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var totalCost float64
	if err := query.Select("COALESCE(SUM(cost), 0)").Scan(&totalCost).Error; err != nil {
		return 0, 0, err
	}

	return count, totalCost, nil
}
