package service

import (
	"context"
	"time"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/dashboard/dto"
	"github.com/oretina/assettrack/internal/modules/dashboard/repository"
	maintenanceService "github.com/oretina/assettrack/internal/modules/maintenance/service"
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	AssetsByCategory(ctx context.Context) ([]dto.CategoryCount, error)
	AssetsByStatus(ctx context.Context) ([]dto.StatusCount, error)
}

type dashboardService struct {
	repo        repository.DashboardRepository
	maintenance maintenanceService.MaintenanceService
}

func NewDashboardService(repo repository.DashboardRepository, maintenance maintenanceService.MaintenanceService) DashboardService {
	return &dashboardService{repo: repo, maintenance: maintenance}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	totalAssets, err := s.repo.CountAssets(ctx)
	if err != nil {
		return nil, err
	}

	activeAssets, err := s.repo.CountAssetsWithStatus(ctx, entity.AssetStatusActive)
	if err != nil {
		return nil, err
	}

	maintenanceAssets, err := s.repo.CountAssetsWithStatus(ctx, entity.AssetStatusMaintenance)
	if err != nil {
		return nil, err
	}

	totalValue, err := s.repo.SumPurchasePrice(ctx)
	if err != nil {
		return nil, err
	}

	totalMaintenance, err := s.repo.CountMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	recentMaintenance, err := s.repo.CountMaintenanceSince(ctx, time.Now().AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	maintenanceCost, err := s.maintenance.Stats(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalAssets:       totalAssets,
		ActiveAssets:      activeAssets,
		MaintenanceDue:    maintenanceAssets,
		InactiveAssets:    totalAssets - activeAssets - maintenanceAssets,
		TotalValue:        totalValue,
		TotalMaintenance:  totalMaintenance,
		RecentMaintenance: recentMaintenance,
		MaintenanceCost:   maintenanceCost,
	}, nil
}

func (s *dashboardService) AssetsByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	rows, err := s.repo.GroupAssetsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.CategoryCount{}
	}
	return rows, nil
}

func (s *dashboardService) AssetsByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	rows, err := s.repo.GroupAssetsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.StatusCount{}
	}
	return rows, nil
}
