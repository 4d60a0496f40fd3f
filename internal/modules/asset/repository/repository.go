package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	FindByTag(ctx context.Context, tag string) (*entity.Asset, error)
	FindAll(ctx context.Context, status, category, location string, offset, limit int) ([]*entity.Asset, int64, error)
	Search(ctx context.Context, query string) ([]*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).
		Preload("MaintenanceRecords").
		First(&asset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindByTag(ctx context.Context, tag string) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).Where("asset_tag = ?", tag).First(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindAll(ctx context.Context, status, category, location string, offset, limit int) ([]*entity.Asset, int64, error) {
	var assets []*entity.Asset
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Asset{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&assets).Error; err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *assetRepository) Search(ctx context.Context, query string) ([]*entity.Asset, error) {
	var assets []*entity.Asset
	pattern := "%" + query + "%"

	if err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR asset_tag ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Find(&assets).Error; err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

// Delete removes the asset and its maintenance records in one transaction so
// a hard delete can never orphan maintenance rows.
func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&entity.MaintenanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Asset{}, "id = ?", id).Error
	})
}
