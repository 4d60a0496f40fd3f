package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/maintenance/dto"
	"github.com/oretina/assettrack/pkg/apperror"
)

type fakeAssetRepo struct {
	assets map[uuid.UUID]*entity.Asset
}

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	f.assets[asset.ID] = asset
	return nil
}

func (f *fakeAssetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	asset, ok := f.assets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return asset, nil
}

func (f *fakeAssetRepo) FindByTag(ctx context.Context, tag string) (*entity.Asset, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssetRepo) FindAll(ctx context.Context, status, category, location string, offset, limit int) ([]*entity.Asset, int64, error) {
	return nil, 0, nil
}

func (f *fakeAssetRepo) Search(ctx context.Context, query string) ([]*entity.Asset, error) {
	return nil, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	f.assets[asset.ID] = asset
	return nil
}

func (f *fakeAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.assets, id)
	return nil
}

// fakeMaintenanceRepo mirrors the transactional contract of the real
// repository: Schedule and Complete flip the asset status together with the
// record write.
type fakeMaintenanceRepo struct {
	records map[uuid.UUID]*entity.MaintenanceRecord
	assets  *fakeAssetRepo
}

func (f *fakeMaintenanceRepo) FindAll(ctx context.Context) ([]*entity.MaintenanceRecord, error) {
	var out []*entity.MaintenanceRecord
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) FindByAsset(ctx context.Context, assetID uuid.UUID) ([]*entity.MaintenanceRecord, error) {
	var out []*entity.MaintenanceRecord
	for _, r := range f.records {
		if r.AssetID == assetID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceRecord, error) {
	var out []*entity.MaintenanceRecord
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeMaintenanceRepo) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	for _, r := range f.records {
		if r.AssetID == assetID {
			count++
		}
	}
	return count, nil
}

func (f *fakeMaintenanceRepo) Schedule(ctx context.Context, record *entity.MaintenanceRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records[record.ID] = record
	f.assets.assets[record.AssetID].Status = entity.AssetStatusMaintenance
	return nil
}

func (f *fakeMaintenanceRepo) Complete(ctx context.Context, record *entity.MaintenanceRecord) error {
	f.assets.assets[record.AssetID].Status = entity.AssetStatusActive
	delete(f.records, record.ID)
	return nil
}

func (f *fakeMaintenanceRepo) Update(ctx context.Context, record *entity.MaintenanceRecord) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeMaintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

func (f *fakeMaintenanceRepo) Stats(ctx context.Context, assetID *uuid.UUID) (int64, float64, error) {
	var count int64
	var total float64
	for _, r := range f.records {
		if assetID != nil && r.AssetID != *assetID {
			continue
		}
		count++
		total += r.Cost
	}
	return count, total, nil
}

func newTestService() (MaintenanceService, *fakeAssetRepo, *fakeMaintenanceRepo) {
	assets := &fakeAssetRepo{assets: make(map[uuid.UUID]*entity.Asset)}
	records := &fakeMaintenanceRepo{records: make(map[uuid.UUID]*entity.MaintenanceRecord), assets: assets}
	return NewMaintenanceService(records, assets), assets, records
}

func seedAsset(assets *fakeAssetRepo, status string) *entity.Asset {
	asset := &entity.Asset{ID: uuid.New(), Name: "Printer", AssetTag: "PRN-001", Status: status}
	assets.assets[asset.ID] = asset
	return asset
}

func TestScheduleMovesAssetToMaintenance(t *testing.T) {
	svc, assets, _ := newTestService()
	asset := seedAsset(assets, entity.AssetStatusActive)

	record, err := svc.Schedule(context.Background(), asset.ID, dto.ScheduleRequest{
		Type: "Repair",
		Date: "2026-03-01",
		Cost: 150,
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if record.AssetID != asset.ID {
		t.Errorf("record assetID = %v, want %v", record.AssetID, asset.ID)
	}
	if asset.Status != entity.AssetStatusMaintenance {
		t.Errorf("asset status = %q, want MAINTENANCE", asset.Status)
	}
}

func TestScheduleRejectsSecondOpenCycle(t *testing.T) {
	svc, assets, _ := newTestService()
	asset := seedAsset(assets, entity.AssetStatusActive)
	ctx := context.Background()

	if _, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{Type: "Repair", Date: "2026-03-01"}); err != nil {
		t.Fatalf("first schedule: %v", err)
	}

	_, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{Type: "Inspection", Date: "2026-04-01"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("second schedule: err = %v, want ErrInvalidInput", err)
	}
}

func TestScheduleUnknownAsset(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Schedule(context.Background(), uuid.New(), dto.ScheduleRequest{Type: "Repair", Date: "2026-03-01"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCompleteRestoresAssetAndRemovesRecord(t *testing.T) {
	svc, assets, records := newTestService()
	asset := seedAsset(assets, entity.AssetStatusActive)
	ctx := context.Background()

	record, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{Type: "Repair", Date: "2026-03-01"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if err := svc.Complete(ctx, record.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if asset.Status != entity.AssetStatusActive {
		t.Errorf("asset status = %q, want ACTIVE", asset.Status)
	}
	if len(records.records) != 0 {
		t.Errorf("records remaining = %d, want 0", len(records.records))
	}

	// The cycle is closed, so a new one can be opened.
	if _, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{Type: "Inspection", Date: "2026-05-01"}); err != nil {
		t.Errorf("reschedule after complete: %v", err)
	}
}

func TestDeleteLeavesAssetStatusAlone(t *testing.T) {
	svc, assets, records := newTestService()
	asset := seedAsset(assets, entity.AssetStatusActive)
	ctx := context.Background()

	record, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{Type: "Repair", Date: "2026-03-01"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if asset.Status != entity.AssetStatusMaintenance {
		t.Errorf("asset status = %q, want MAINTENANCE (delete does not complete the cycle)", asset.Status)
	}
	if len(records.records) != 0 {
		t.Errorf("records remaining = %d, want 0", len(records.records))
	}
}

func TestListByDateRangeRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newTestService()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	_, err := svc.ListByDateRange(context.Background(), start, end)
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestStats(t *testing.T) {
	svc, assets, _ := newTestService()
	ctx := context.Background()

	// Empty dataset keeps the average at zero instead of dividing by zero.
	stats, err := svc.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRecords != 0 || stats.TotalCost != 0 || stats.AverageCost != 0 {
		t.Errorf("empty stats = %+v, want all zeros", stats)
	}

	a := seedAsset(assets, entity.AssetStatusActive)
	b := &entity.Asset{ID: uuid.New(), Name: "Scanner", AssetTag: "SCN-001", Status: entity.AssetStatusActive}
	assets.assets[b.ID] = b

	if _, err := svc.Schedule(ctx, a.ID, dto.ScheduleRequest{Type: "Repair", Date: "2026-03-01", Cost: 100}); err != nil {
		t.Fatalf("schedule a: %v", err)
	}
	if _, err := svc.Schedule(ctx, b.ID, dto.ScheduleRequest{Type: "Repair", Date: "2026-03-02", Cost: 300}); err != nil {
		t.Fatalf("schedule b: %v", err)
	}

	stats, err = svc.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRecords != 2 || stats.TotalCost != 400 || stats.AverageCost != 200 {
		t.Errorf("stats = %+v, want 2 records, 400 total, 200 average", stats)
	}

	stats, err = svc.Stats(ctx, &a.ID)
	if err != nil {
		t.Fatalf("per-asset stats: %v", err)
	}
	if stats.TotalRecords != 1 || stats.TotalCost != 100 {
		t.Errorf("per-asset stats = %+v, want 1 record, 100 total", stats)
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc, assets, _ := newTestService()
	asset := seedAsset(assets, entity.AssetStatusActive)
	ctx := context.Background()

	record, err := svc.Schedule(ctx, asset.ID, dto.ScheduleRequest{
		Type:        "Repair",
		Date:        "2026-03-01",
		Cost:        150,
		PerformedBy: "TechCorp",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	cost := 175.0
	updated, err := svc.Update(ctx, record.ID, dto.UpdateMaintenanceRequest{Cost: &cost})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Cost != 175 {
		t.Errorf("cost = %v, want 175", updated.Cost)
	}
	if updated.Type != "Repair" || updated.PerformedBy != "TechCorp" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}
