package service

import (
	"context"
	"sort"
	"time"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier boundaries are inclusive on the lower bound.
var (
	tierExcellentFloor = decimal.NewFromInt(20)
	tierGoodFloor      = decimal.NewFromInt(10)
)

// ComputePerformance derives the calculated block of a sales report from its
// product rows and the caller-supplied comparison figures. It is a pure
// function: same input, same output, no shared state — safe to call
// concurrently. The persistence layer calls it on every save so the stored
// block can never be set independently of the rows it summarizes.
func ComputePerformance(products []model.ReportProduct, cmp *dto.ComparisonInput) model.Performance {
	var perf model.Performance

	totalRevenue := decimal.Zero
	totalUnits := 0
	for _, p := range products {
		totalRevenue = totalRevenue.Add(p.Revenue)
		totalUnits += p.UnitsSold
	}
	perf.TotalRevenue = totalRevenue
	perf.TotalUnits = totalUnits

	if totalUnits > 0 {
		avg := totalRevenue.Div(decimal.NewFromInt(int64(totalUnits)))
		perf.AvgRevenuePerUnit = &avg
	}

	if len(products) > 0 {
		// Stable sort: ties resolve to the first qualifying row in input order.
		ranked := make([]model.ReportProduct, len(products))
		copy(ranked, products)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].UnitsSold > ranked[j].UnitsSold
		})
		best := ranked[0].ProductName
		worst := ranked[len(ranked)-1].ProductName
		perf.BestSeller = &best
		perf.WorstSeller = &worst
	}

	growth := decimal.Zero
	if cmp != nil {
		growth = cmp.PreviousPeriodGrowth
		perf.VsTarget = cmp.VsTarget
	}
	perf.PrevPeriodGrowth = growth

	switch {
	case growth.GreaterThanOrEqual(tierExcellentFloor):
		perf.Summary = model.TierExcellent
	case growth.GreaterThanOrEqual(tierGoodFloor):
		perf.Summary = model.TierGood
	case growth.GreaterThanOrEqual(decimal.Zero):
		perf.Summary = model.TierAverage
	default:
		perf.Summary = model.TierPoor
	}

	return perf
}

// ReportService persists sales reports. The performance block is recomputed
// from the product rows on every create and update.
type ReportService interface {
	Create(ctx context.Context, req dto.SaveReportRequest) (*dto.ReportResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error)
	List(ctx context.Context) ([]dto.ReportResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

// validateReportRows rejects negative figures before they can feed the
// aggregation. Both Create and Update go through it.
func validateReportRows(inputs []dto.ReportProductInput) error {
	for _, p := range inputs {
		if p.UnitsSold < 0 {
			return &ValidationError{Field: "products", Reason: "units_sold must not be negative"}
		}
		if p.Revenue.IsNegative() {
			return &ValidationError{Field: "products", Reason: "revenue must not be negative"}
		}
	}
	return nil
}

func productRows(inputs []dto.ReportProductInput) []model.ReportProduct {
	rows := make([]model.ReportProduct, 0, len(inputs))
	for i, p := range inputs {
		rows = append(rows, model.ReportProduct{
			Position:    i,
			ProductName: p.ProductName,
			UnitsSold:   p.UnitsSold,
			Revenue:     p.Revenue,
		})
	}
	return rows
}

func mapReport(r model.SalesReport) dto.ReportResponse {
	products := make([]dto.ReportProductInput, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, dto.ReportProductInput{
			ProductName: p.ProductName,
			UnitsSold:   p.UnitsSold,
			Revenue:     p.Revenue,
		})
	}
	return dto.ReportResponse{
		ID:         r.ID.String(),
		ReportName: r.ReportName,
		Period:     r.Period,
		Products:   products,
		Performance: dto.PerformanceResponse{
			TotalRevenue:      r.Performance.TotalRevenue,
			TotalUnits:        r.Performance.TotalUnits,
			AvgRevenuePerUnit: r.Performance.AvgRevenuePerUnit,
			BestSeller:        r.Performance.BestSeller,
			WorstSeller:       r.Performance.WorstSeller,
			PrevPeriodGrowth:  r.Performance.PrevPeriodGrowth,
			VsTarget:          r.Performance.VsTarget,
			Summary:           r.Performance.Summary,
		},
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func (s *reportService) Create(ctx context.Context, req dto.SaveReportRequest) (*dto.ReportResponse, error) {
	if err := validateReportRows(req.Products); err != nil {
		return nil, err
	}

	rows := productRows(req.Products)
	report := &model.SalesReport{
		ReportName:  req.ReportName,
		Period:      req.Period,
		Products:    rows,
		Performance: ComputePerformance(rows, req.Comparison),
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	resp := mapReport(*report)
	return &resp, nil
}

func (s *reportService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapReport(*report)
	return &resp, nil
}

func (s *reportService) List(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		result = append(result, mapReport(r))
	}
	return result, nil
}

func (s *reportService) Update(ctx context.Context, id uuid.UUID, req dto.SaveReportRequest) (*dto.ReportResponse, error) {
	if err := validateReportRows(req.Products); err != nil {
		return nil, err
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows := productRows(req.Products)
	for i := range rows {
		rows[i].ReportID = report.ID
	}
	report.ReportName = req.ReportName
	report.Period = req.Period
	report.Products = rows
	report.Performance = ComputePerformance(rows, req.Comparison)

	if err := s.repo.Replace(ctx, report); err != nil {
		return nil, err
	}
	resp := mapReport(*report)
	return &resp, nil
}
