package service

import (
	"context"
	"errors"
	"time"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemService owns the inventory consistency rules: no two non-archived items
// may share a name, archiving frees the name, restoring re-claims it only if
// still free. The service check gives callers a precise error; the partial
// unique index applied in infra.NewDatabase is the authority under concurrent
// writes, surfacing as gorm.ErrDuplicatedKey which is mapped back to
// DuplicateItemError here.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	Archive(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	Restore(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func mapItem(i model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:         i.ID.String(),
		Name:       i.Name,
		Quantity:   i.Quantity,
		Category:   i.Category,
		IsArchived: i.IsArchived,
		ArchivedAt: i.ArchivedAt,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// checkNameFree returns DuplicateItemError when an active item other than
// excludeID already holds name.
func (s *itemService) checkNameFree(ctx context.Context, name string, excludeID uuid.UUID) error {
	_, err := s.repo.FindActiveByName(ctx, name, excludeID)
	if err == nil {
		return &DuplicateItemError{Name: name}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !model.ValidItemCategory(req.Category) {
		return nil, &ValidationError{Field: "category", Reason: "unknown category " + req.Category}
	}
	if req.Quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if err := s.checkNameFree(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	item := &model.Item{
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent create — same outcome.
			return nil, &DuplicateItemError{Name: req.Name}
		}
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		// Uniqueness only matters among active items; an archived item may
		// be renamed freely.
		if !item.IsArchived {
			if err := s.checkNameFree(ctx, *req.Name, item.ID); err != nil {
				return nil, err
			}
		}
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
		}
		item.Quantity = *req.Quantity
	}
	if req.Category != nil {
		if !model.ValidItemCategory(*req.Category) {
			return nil, &ValidationError{Field: "category", Reason: "unknown category " + *req.Category}
		}
		item.Category = *req.Category
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateItemError{Name: item.Name}
		}
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *itemService) Archive(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsArchived {
		return nil, &ValidationError{Field: "id", Reason: "item is already archived"}
	}

	now := time.Now()
	item.IsArchived = true
	item.ArchivedAt = &now
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

// Restore re-activates an archived item. The name-uniqueness invariant must
// hold for all active items at all times, so restore re-runs the duplicate
// check: if another active item claimed the name while this one was archived,
// the restore fails and the item stays archived.
func (s *itemService) Restore(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.IsArchived {
		return nil, &ValidationError{Field: "id", Reason: "item is not archived"}
	}
	if err := s.checkNameFree(ctx, item.Name, item.ID); err != nil {
		return nil, err
	}

	item.IsArchived = false
	item.ArchivedAt = nil
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateItemError{Name: item.Name}
		}
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *itemService) List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error) {
	var (
		items []model.Item
		err   error
	)
	switch {
	case filter.Category != "":
		if !model.ValidItemCategory(filter.Category) {
			return nil, &ValidationError{Field: "category", Reason: "unknown category " + filter.Category}
		}
		items, err = s.repo.FindByCategory(ctx, filter.Category, filter.IncludeArchived)
	case filter.Archived:
		items, err = s.repo.FindArchived(ctx)
	default:
		items, err = s.repo.FindActive(ctx)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapItem(i))
	}
	return result, nil
}
