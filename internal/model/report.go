package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Performance tiers derived from period-over-period growth.
const (
	TierExcellent = "Excellent"
	TierGood      = "Good"
	TierAverage   = "Average"
	TierPoor      = "Poor"
)

// SalesReport is a saved performance summary for a reporting period.
// The Performance block is derived from Products (and the caller-supplied
// comparison figures) every time the report is persisted — it is never
// accepted from the caller directly, so it cannot drift out of sync.
type SalesReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportName string    `gorm:"not null"`
	Period     string    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Products []ReportProduct `gorm:"foreignKey:ReportID"`

	Performance Performance `gorm:"embedded"`
}

// ReportProduct is one per-product sales row feeding the aggregation.
// Position preserves the caller's input order, which is significant for
// best/worst-seller tie-breaking.
type ReportProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	ProductName string    `gorm:"not null"`
	UnitsSold   int       `gorm:"not null"`
	Revenue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// Performance is the calculated block of a SalesReport. AvgRevenuePerUnit,
// BestSeller and WorstSeller are nil when the report has no products (or, for
// the average, no units), never zero-valued placeholders.
type Performance struct {
	TotalRevenue      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	TotalUnits        int              `gorm:"not null"`
	AvgRevenuePerUnit *decimal.Decimal `gorm:"type:decimal(12,4)"`
	BestSeller        *string
	WorstSeller       *string
	PrevPeriodGrowth  decimal.Decimal  `gorm:"type:decimal(8,2);not null"`
	VsTarget          *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Summary           string           `gorm:"not null"`
}
