package repository

import (
	"context"

	"tindahan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, r *model.SalesReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SalesReport, error)
	List(ctx context.Context) ([]model.SalesReport, error)

	// Replace persists the report and swaps out its product rows in one
	// transaction, so a failed save never leaves a half-updated report.
	Replace(ctx context.Context, r *model.SalesReport) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Create(ctx context.Context, report *model.SalesReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SalesReport, error) {
	var report model.SalesReport
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&report, id).Error
	return &report, err
}

func (r *reportRepo) List(ctx context.Context) ([]model.SalesReport, error) {
	var reports []model.SalesReport
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) Replace(ctx context.Context, report *model.SalesReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", report.ID).Delete(&model.ReportProduct{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(report).Error
	})
}
