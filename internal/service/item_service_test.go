package service

import (
	"context"
	"strings"
	"testing"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubItemRepo is an in-memory ItemRepository for unit tests.
type stubItemRepo struct {
	items map[uuid.UUID]*model.Item
}

var _ repository.ItemRepository = (*stubItemRepo)(nil)

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	item.ID = uuid.New()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *stubItemRepo) FindActiveByName(_ context.Context, name string, excludeID uuid.UUID) (*model.Item, error) {
	for _, item := range r.items {
		if item.IsArchived || item.ID == excludeID {
			continue
		}
		if strings.EqualFold(item.Name, name) {
			cp := *item
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) FindActive(_ context.Context) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if !item.IsArchived {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) FindArchived(_ context.Context) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if item.IsArchived {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubItemRepo) FindByCategory(_ context.Context, category string, includeArchived bool) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if item.Category != category {
			continue
		}
		if item.IsArchived && !includeArchived {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *model.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

func TestItemServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	resp, err := svc.Create(ctx, dto.CreateItemRequest{
		Name: "Patty Melt Buns", Quantity: 40, Category: model.CategoryBread,
	})
	require.NoError(t, err)
	assert.Equal(t, "Patty Melt Buns", resp.Name)
	assert.Equal(t, 40, resp.Quantity)
	assert.False(t, resp.IsArchived)
	assert.Nil(t, resp.ArchivedAt)
}

func TestItemServiceCreateRejectsDuplicateActiveName(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	_, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Cheddar", Quantity: 5, Category: model.CategoryDairy})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateItemRequest{Name: "cheddar", Quantity: 3, Category: model.CategoryDairy})
	var dup *DuplicateItemError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "cheddar", dup.Name)
}

func TestItemServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	_, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Soda", Quantity: 1, Category: "Beverages"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "category", ve.Field)

	_, err = svc.Create(ctx, dto.CreateItemRequest{Name: "Soda", Quantity: -1, Category: model.CategoryDrinks})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)
}

func TestItemServiceArchiveFreesName(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	first, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Hotdog Classic", Quantity: 12, Category: model.CategoryHotdogs})
	require.NoError(t, err)

	id := uuid.MustParse(first.ID)
	archived, err := svc.Archive(ctx, id)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	require.NotNil(t, archived.ArchivedAt)

	// The name is free again for a new active item.
	_, err = svc.Create(ctx, dto.CreateItemRequest{Name: "Hotdog Classic", Quantity: 20, Category: model.CategoryHotdogs})
	require.NoError(t, err)
}

func TestItemServiceArchiveTwiceFails(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	created, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Ketchup", Quantity: 9, Category: model.CategoryOther})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Archive(ctx, id)
	require.NoError(t, err)

	_, err = svc.Archive(ctx, id)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestItemServiceRestore(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	created, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Bacon Strips", Quantity: 30, Category: model.CategoryMeat})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Archive(ctx, id)
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, id)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
	assert.Nil(t, restored.ArchivedAt)
}

func TestItemServiceRestoreConflictsWithNewActiveItem(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	created, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Orange Juice", Quantity: 8, Category: model.CategoryDrinks})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Archive(ctx, id)
	require.NoError(t, err)

	// Someone re-created the item while the old one sat archived.
	_, err = svc.Create(ctx, dto.CreateItemRequest{Name: "Orange Juice", Quantity: 15, Category: model.CategoryDrinks})
	require.NoError(t, err)

	_, err = svc.Restore(ctx, id)
	var dup *DuplicateItemError
	require.ErrorAs(t, err, &dup)

	// The old item stays archived after the failed restore.
	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)
}

func TestItemServiceRestoreNotArchived(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	created, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Mustard", Quantity: 4, Category: model.CategoryOther})
	require.NoError(t, err)

	_, err = svc.Restore(ctx, uuid.MustParse(created.ID))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestItemServiceUpdateRename(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	a, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Cola", Quantity: 24, Category: model.CategoryDrinks})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateItemRequest{Name: "Root Beer", Quantity: 24, Category: model.CategoryDrinks})
	require.NoError(t, err)

	// Renaming onto an existing active name is rejected.
	taken := "Root Beer"
	_, err = svc.Update(ctx, uuid.MustParse(a.ID), dto.UpdateItemRequest{Name: &taken})
	var dup *DuplicateItemError
	require.ErrorAs(t, err, &dup)

	// Renaming to a free name works, and keeping the same name is a no-op.
	free := "Cola Zero"
	updated, err := svc.Update(ctx, uuid.MustParse(a.ID), dto.UpdateItemRequest{Name: &free})
	require.NoError(t, err)
	assert.Equal(t, "Cola Zero", updated.Name)
}

func TestItemServiceListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newStubItemRepo())

	active, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Milk", Quantity: 6, Category: model.CategoryDairy})
	require.NoError(t, err)
	gone, err := svc.Create(ctx, dto.CreateItemRequest{Name: "Butter", Quantity: 2, Category: model.CategoryDairy})
	require.NoError(t, err)
	_, err = svc.Archive(ctx, uuid.MustParse(gone.ID))
	require.NoError(t, err)

	list, err := svc.List(ctx, dto.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	archivedList, err := svc.List(ctx, dto.ItemFilter{Archived: true})
	require.NoError(t, err)
	require.Len(t, archivedList, 1)
	assert.Equal(t, gone.ID, archivedList[0].ID)

	byCat, err := svc.List(ctx, dto.ItemFilter{Category: model.CategoryDairy, IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	_, err = svc.List(ctx, dto.ItemFilter{Category: "Nope"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
