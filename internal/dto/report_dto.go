package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ReportProductInput struct {
	ProductName string          `json:"product_name" validate:"required"`
	UnitsSold   int             `json:"units_sold"   validate:"min=0"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ComparisonInput carries the period-over-period figures the caller supplies.
// Only these feed the summary tier; everything else in the performance block
// is derived from the product rows.
type ComparisonInput struct {
	PreviousPeriodGrowth decimal.Decimal  `json:"previous_period_growth"`
	VsTarget             *decimal.Decimal `json:"vs_target"`
}

type SaveReportRequest struct {
	ReportName string               `json:"report_name" validate:"required,min=2,max=120"`
	Period     string               `json:"period"      validate:"required"`
	Products   []ReportProductInput `json:"products"    validate:"dive"`
	Comparison *ComparisonInput     `json:"comparison"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PerformanceResponse struct {
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	TotalUnits        int              `json:"total_units"`
	AvgRevenuePerUnit *decimal.Decimal `json:"avg_revenue_per_unit"`
	BestSeller        *string          `json:"best_seller"`
	WorstSeller       *string          `json:"worst_seller"`
	PrevPeriodGrowth  decimal.Decimal  `json:"previous_period_growth"`
	VsTarget          *decimal.Decimal `json:"vs_target"`
	Summary           string           `json:"summary"`
}

type ReportResponse struct {
	ID          string               `json:"id"`
	ReportName  string               `json:"report_name"`
	Period      string               `json:"period"`
	Products    []ReportProductInput `json:"products"`
	Performance PerformanceResponse  `json:"performance"`
	CreatedAt   string               `json:"created_at"`
}
