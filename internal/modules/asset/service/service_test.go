package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/asset/dto"
	"github.com/oretina/assettrack/pkg/apperror"
	commonDto "github.com/oretina/assettrack/pkg/dto"
)

type fakeAssetRepo struct {
	assets map[uuid.UUID]*entity.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[uuid.UUID]*entity.Asset)}
}

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	for _, a := range f.assets {
		if a.AssetTag == asset.AssetTag {
			return gorm.ErrDuplicatedKey
		}
	}
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
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
	for _, a := range f.assets {
		if a.AssetTag == tag {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssetRepo) FindAll(ctx context.Context, status, category, location string, offset, limit int) ([]*entity.Asset, int64, error) {
	var matched []*entity.Asset
	for _, a := range f.assets {
		if status != "" && a.Status != status {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].AssetTag < matched[j].AssetTag })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeAssetRepo) Search(ctx context.Context, query string) ([]*entity.Asset, error) {
	return nil, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	if _, ok := f.assets[asset.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, a := range f.assets {
		if id != asset.ID && a.AssetTag == asset.AssetTag {
			return gorm.ErrDuplicatedKey
		}
	}
	f.assets[asset.ID] = asset
	return nil
}

func (f *fakeAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.assets, id)
	return nil
}

func newTestService() (AssetService, *fakeAssetRepo) {
	repo := newFakeAssetRepo()
	return NewAssetService(repo), repo
}

func TestCreateDisambiguatesDuplicateTag(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := dto.CreateAssetRequest{
		Name:          "Dell XPS 13",
		AssetTag:      "AST-001",
		Category:      "Laptop",
		Location:      "HQ",
		PurchasePrice: 1200,
	}

	first, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.AssetTag != "AST-001" {
		t.Errorf("first tag = %q, want AST-001", first.AssetTag)
	}

	second, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.AssetTag != "AST-001-1" {
		t.Errorf("second tag = %q, want AST-001-1", second.AssetTag)
	}

	third, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("third create: %v", err)
	}
	if third.AssetTag != "AST-001-2" {
		t.Errorf("third tag = %q, want AST-001-2", third.AssetTag)
	}
}

func TestCreateDefaultsStatusToActive(t *testing.T) {
	svc, _ := newTestService()

	asset, err := svc.Create(context.Background(), dto.CreateAssetRequest{
		Name:     "Monitor",
		AssetTag: "MON-001",
		Category: "Monitor",
		Location: "HQ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if asset.Status != entity.AssetStatusActive {
		t.Errorf("status = %q, want ACTIVE", asset.Status)
	}
	if asset.UserAssigned != nil {
		t.Errorf("userAssigned = %v, want nil", *asset.UserAssigned)
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), dto.CreateAssetRequest{
		Name:         "Monitor",
		AssetTag:     "MON-002",
		Category:     "Monitor",
		Location:     "HQ",
		PurchaseDate: "not-a-date",
	})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestListPageBeyondRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, tag := range []string{"A-1", "A-2", "A-3"} {
		_, err := svc.Create(ctx, dto.CreateAssetRequest{
			Name: "Asset", AssetTag: tag, Category: "Laptop", Location: "HQ",
			PurchasePrice: float64(i),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	result, err := svc.List(ctx, dto.AssetFilter{
		PaginationQuery: commonDto.PaginationQuery{Page: 9, Limit: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(result.Data) != 0 {
		t.Errorf("data length = %d, want 0", len(result.Data))
	}
	if result.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", result.Pagination.Total)
	}
	if result.Pagination.Pages != 1 {
		t.Errorf("pages = %d, want 1", result.Pagination.Pages)
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	serial := "SN-123"
	created, err := svc.Create(ctx, dto.CreateAssetRequest{
		Name:          "ThinkPad",
		AssetTag:      "LT-001",
		Category:      "Laptop",
		Location:      "HQ",
		SerialNumber:  &serial,
		PurchasePrice: 999,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newLocation := "Warehouse"
	updated, err := svc.Update(ctx, created.ID, dto.UpdateAssetRequest{Location: &newLocation})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Location != "Warehouse" {
		t.Errorf("location = %q, want Warehouse", updated.Location)
	}
	if updated.Name != "ThinkPad" {
		t.Errorf("name changed unexpectedly: %q", updated.Name)
	}
	if updated.SerialNumber == nil || *updated.SerialNumber != "SN-123" {
		t.Error("serial number should be untouched")
	}
	if updated.PurchasePrice != 999 {
		t.Errorf("price changed unexpectedly: %v", updated.PurchasePrice)
	}

	// An explicit empty string clears an optional field.
	empty := ""
	updated, err = svc.Update(ctx, created.ID, dto.UpdateAssetRequest{SerialNumber: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SerialNumber != nil {
		t.Errorf("serial number = %v, want cleared", *updated.SerialNumber)
	}
}

func TestUpdateToTakenTagIsConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateAssetRequest{
		Name: "First", AssetTag: "AST-010", Category: "Laptop", Location: "HQ",
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, dto.CreateAssetRequest{
		Name: "Second", AssetTag: "AST-011", Category: "Laptop", Location: "HQ",
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Updates do not disambiguate; taking another asset's tag is a conflict.
	taken := "AST-010"
	_, err = svc.Update(ctx, second.ID, dto.UpdateAssetRequest{AssetTag: &taken})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestAssignAndUnassign(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateAssetRequest{
		Name: "Keyboard", AssetTag: "KB-001", Category: "Keyboard", Location: "HQ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Assign(ctx, created.ID, "   "); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("blank assignee: err = %v, want ErrInvalidInput", err)
	}

	asset, err := svc.Assign(ctx, created.ID, "John Smith")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if asset.UserAssigned == nil || *asset.UserAssigned != "John Smith" {
		t.Errorf("userAssigned = %v, want John Smith", asset.UserAssigned)
	}

	// Reassignment replaces the previous assignee.
	asset, err = svc.Assign(ctx, created.ID, "Sarah Johnson")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if asset.UserAssigned == nil || *asset.UserAssigned != "Sarah Johnson" {
		t.Errorf("userAssigned = %v, want Sarah Johnson", asset.UserAssigned)
	}

	asset, err = svc.Unassign(ctx, created.ID)
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if asset.UserAssigned != nil {
		t.Errorf("userAssigned = %v, want nil", *asset.UserAssigned)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
