package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/internal/modules/asset/dto"
	"github.com/oretina/assettrack/internal/modules/asset/repository"
	"github.com/oretina/assettrack/pkg/apperror"
	commonDto "github.com/oretina/assettrack/pkg/dto"
)

type AssetService interface {
	List(ctx context.Context, filter dto.AssetFilter) (*dto.PaginatedAssetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	Create(ctx context.Context, req dto.CreateAssetRequest) (*entity.Asset, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*entity.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string) ([]*entity.Asset, error)
	Assign(ctx context.Context, id uuid.UUID, userAssigned string) (*entity.Asset, error)
	Unassign(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
}

type assetService struct {
	repo repository.AssetRepository
}

func NewAssetService(repo repository.AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) List(ctx context.Context, filter dto.AssetFilter) (*dto.PaginatedAssetResponse, error) {
	page, limit := filter.Clamp()
	offset := (page - 1) * limit

	assets, total, err := s.repo.FindAll(ctx, filter.Status, filter.Category, filter.Location, offset, limit)
	if err != nil {
		return nil, err
	}

	if assets == nil {
		assets = []*entity.Asset{}
	}

	return &dto.PaginatedAssetResponse{
		Data:       assets,
		Pagination: commonDto.NewPagination(page, limit, total),
	}, nil
}

func (s *assetService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "asset not found")
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Create(ctx context.Context, req dto.CreateAssetRequest) (*entity.Asset, error) {
	tag, err := s.resolveTag(ctx, strings.TrimSpace(req.AssetTag))
	if err != nil {
		return nil, err
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.AssetStatusActive
	}

	asset := &entity.Asset{
		Name:          req.Name,
		AssetTag:      tag,
		DeviceName:    req.DeviceName,
		SerialNumber:  req.SerialNumber,
		Category:      req.Category,
		Location:      req.Location,
		UserAssigned:  normalizeAssignee(req.UserAssigned),
		PurchaseDate:  purchaseDate,
		PurchasePrice: req.PurchasePrice,
		Status:        status,
		Description:   req.Description,
		RAM:           req.RAM,
		Storage:       req.Storage,
		Processor:     req.Processor,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the tag race to a concurrent create with the same base tag.
			return nil, apperror.New(apperror.ErrConflict, "asset tag already taken, retry")
		}
		return nil, err
	}

	return asset, nil
}

// resolveTag disambiguates a taken asset tag by appending an incrementing
// numeric suffix until a free one is found. Collisions are resolved silently
// rather than rejected.
func (s *assetService) resolveTag(ctx context.Context, base string) (string, error) {
	tag := base
	for counter := 1; ; counter++ {
		_, err := s.repo.FindByTag(ctx, tag)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, nil
		}
		if err != nil {
			return "", err
		}
		tag = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *assetService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*entity.Asset, error) {
	asset, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.AssetTag != nil {
		asset.AssetTag = *req.AssetTag
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	if req.DeviceName != nil {
		asset.DeviceName = emptyToNil(req.DeviceName)
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = emptyToNil(req.SerialNumber)
	}
	if req.UserAssigned != nil {
		asset.UserAssigned = emptyToNil(req.UserAssigned)
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		asset.PurchaseDate = purchaseDate
	}
	if req.PurchasePrice != nil {
		asset.PurchasePrice = *req.PurchasePrice
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.RAM != nil {
		asset.RAM = emptyToNil(req.RAM)
	}
	if req.Storage != nil {
		asset.Storage = emptyToNil(req.Storage)
	}
	if req.Processor != nil {
		asset.Processor = emptyToNil(req.Processor)
	}

	if err := s.repo.Update(ctx, asset); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.ErrConflict, "asset tag already in use")
		}
		return nil, err
	}

	return asset, nil
}

func (s *assetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *assetService) Search(ctx context.Context, query string) ([]*entity.Asset, error) {
	assets, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if assets == nil {
		assets = []*entity.Asset{}
	}
	return assets, nil
}

func (s *assetService) Assign(ctx context.Context, id uuid.UUID, userAssigned string) (*entity.Asset, error) {
	name := strings.TrimSpace(userAssigned)
	if name == "" {
		return nil, apperror.New(apperror.ErrInvalidInput, "assignee name is required")
	}

	asset, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Reassignment is the same write: the previous assignee is simply replaced.
	asset.UserAssigned = &name
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetService) Unassign(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	asset, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.UserAssigned = nil
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func normalizeAssignee(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// parseDate accepts RFC 3339 timestamps or plain yyyy-mm-dd dates.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, apperror.New(apperror.ErrInvalidInput, "invalid date format, expected RFC 3339 or yyyy-mm-dd")
}
