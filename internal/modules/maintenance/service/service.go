package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	assetRepo "github.com/oretina/assettrack/internal/modules/asset/repository"
	"github.com/oretina/assettrack/internal/modules/maintenance/dto"
	"github.com/oretina/assettrack/internal/modules/maintenance/repository"
	"github.com/oretina/assettrack/pkg/apperror"
)

type MaintenanceService interface {
	ListAll(ctx context.Context) ([]*entity.MaintenanceRecord, error)
	ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.MaintenanceRecord, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceRecord, error)
	Schedule(ctx context.Context, assetID uuid.UUID, req dto.ScheduleRequest) (*entity.MaintenanceRecord, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaintenanceRequest) (*entity.MaintenanceRecord, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, assetID *uuid.UUID) (*dto.StatsResponse, error)
}

type maintenanceService struct {
	repo   repository.MaintenanceRepository
	assets assetRepo.AssetRepository
}

func NewMaintenanceService(repo repository.MaintenanceRepository, assets assetRepo.AssetRepository) MaintenanceService {
	return &maintenanceService{repo: repo, assets: assets}
}

func (s *maintenanceService) ListAll(ctx context.Context) ([]*entity.MaintenanceRecord, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*entity.MaintenanceRecord{}
	}
	return records, nil
}

func (s *maintenanceService) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	records, err := s.repo.FindByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*entity.MaintenanceRecord{}
	}
	return records, nil
}

func (s *maintenanceService) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceRecord, error) {
	if end.Before(start) {
		return nil, apperror.New(apperror.ErrInvalidInput, "end date must not be before start date")
	}

	records, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*entity.MaintenanceRecord{}
	}
	return records, nil
}

// Schedule opens a maintenance cycle: it creates the record and moves the
// asset to MAINTENANCE as one operation. An asset can have only one
// outstanding cycle at a time.
func (s *maintenanceService) Schedule(ctx context.Context, assetID uuid.UUID, req dto.ScheduleRequest) (*entity.MaintenanceRecord, error) {
	if _, err := s.assets.FindByID(ctx, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "asset not found")
		}
		return nil, err
	}

	outstanding, err := s.repo.CountByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if outstanding > 0 {
		return nil, apperror.New(apperror.ErrInvalidInput, "maintenance is already scheduled for this asset, complete or delete the existing record first")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record := &entity.MaintenanceRecord{
		AssetID:     assetID,
		Type:        req.Type,
		Date:        date,
		Description: req.Description,
		Cost:        req.Cost,
		PerformedBy: req.PerformedBy,
	}

	if err := s.repo.Schedule(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *maintenanceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaintenanceRequest) (*entity.MaintenanceRecord, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		record.Type = *req.Type
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.PerformedBy != nil {
		record.PerformedBy = *req.PerformedBy
	}
	if req.Description != nil {
		record.Description = *req.Description
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Complete closes the cycle: the asset goes back to ACTIVE and the record is
// deleted. No completed state is retained.
func (s *maintenanceService) Complete(ctx context.Context, id uuid.UUID) error {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Complete(ctx, record)
}

// Delete removes a record without touching the asset status. Meant for
// administrative cleanup of erroneous records, not for completing a cycle.
func (s *maintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findRecord(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *maintenanceService) Stats(ctx context.Context, assetID *uuid.UUID) (*dto.StatsResponse, error) {
	count, totalCost, err := s.repo.Stats(ctx, assetID)
	if err != nil {
		return nil, err
	}

	averageCost := 0.0
	if count > 0 {
		averageCost = totalCost / float64(count)
	}

	return &dto.StatsResponse{
		TotalRecords: count,
		TotalCost:    totalCost,
		AverageCost:  averageCost,
	}, nil
}

func (s *maintenanceService) findRecord(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "maintenance record not found")
		}
		return nil, err
	}
	return record, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, apperror.New(apperror.ErrInvalidInput, "invalid date format, expected RFC 3339 or yyyy-mm-dd")
}
