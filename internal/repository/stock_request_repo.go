package repository

import (
	"context"

	"tindahan/internal/dto"
	"tindahan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockRequestRepository interface {
	Create(ctx context.Context, sr *model.StockRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockRequest, error)
	List(ctx context.Context, filter dto.StockRequestFilter) ([]model.StockRequest, error)

	// UpdateStatusIfPending atomically moves a request out of "pending".
	// Returns the number of rows updated: 0 means the request was not pending
	// (or does not exist), so a concurrent approve/reject cannot double-fire.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type stockRequestRepo struct{ db *gorm.DB }

func NewStockRequestRepository(db *gorm.DB) StockRequestRepository {
	return &stockRequestRepo{db: db}
}

func (r *stockRequestRepo) Create(ctx context.Context, sr *model.StockRequest) error {
	return r.db.WithContext(ctx).Create(sr).Error
}

func (r *stockRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockRequest, error) {
	var sr model.StockRequest
	err := r.db.WithContext(ctx).First(&sr, id).Error
	return &sr, err
}

func (r *stockRequestRepo) List(ctx context.Context, filter dto.StockRequestFilter) ([]model.StockRequest, error) {
	var requests []model.StockRequest
	q := r.db.WithContext(ctx)
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *stockRequestRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.StockRequest{}).
		Where("id = ? AND status = ?", id, model.RequestStatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}
