package repository

import (
	"context"

	"tindahan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)

	// FindActiveByName returns the non-archived item holding name
	// (case-insensitive), excluding excludeID when it is non-nil. Returns
	// gorm.ErrRecordNotFound when no active item holds the name.
	FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*model.Item, error)

	FindActive(ctx context.Context) ([]model.Item, error)
	FindArchived(ctx context.Context) ([]model.Item, error)
	FindByCategory(ctx context.Context, category string, includeArchived bool) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *itemRepo) FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*model.Item, error) {
	var item model.Item
	q := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND is_archived = false", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&item).Error
	return &item, err
}

func (r *itemRepo) FindActive(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("is_archived = false").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) FindArchived(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("is_archived = true").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByCategory(ctx context.Context, category string, includeArchived bool) ([]model.Item, error) {
	var items []model.Item
	q := r.db.WithContext(ctx).Where("category = ?", category)
	if !includeArchived {
		q = q.Where("is_archived = false")
	}
	err := q.Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
