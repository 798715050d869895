package service

import (
	"context"
	"testing"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func row(name string, units int, revenue int64) model.ReportProduct {
	return model.ReportProduct{ProductName: name, UnitsSold: units, Revenue: dec(revenue)}
}

func TestComputePerformanceTotalsAndRanking(t *testing.T) {
	products := []model.ReportProduct{
		row("Classic Burger", 10, 100),
		row("Cheese Fries", 5, 80),
	}
	cmp := &dto.ComparisonInput{PreviousPeriodGrowth: dec(25)}

	perf := ComputePerformance(products, cmp)

	assert.True(t, perf.TotalRevenue.Equal(dec(180)))
	assert.Equal(t, 15, perf.TotalUnits)
	require.NotNil(t, perf.AvgRevenuePerUnit)
	assert.True(t, perf.AvgRevenuePerUnit.Equal(dec(12)))
	require.NotNil(t, perf.BestSeller)
	assert.Equal(t, "Classic Burger", *perf.BestSeller)
	require.NotNil(t, perf.WorstSeller)
	assert.Equal(t, "Cheese Fries", *perf.WorstSeller)
	assert.Equal(t, model.TierExcellent, perf.Summary)
}

func TestComputePerformanceEmptyInput(t *testing.T) {
	perf := ComputePerformance(nil, nil)

	assert.True(t, perf.TotalRevenue.IsZero())
	assert.Equal(t, 0, perf.TotalUnits)
	assert.Nil(t, perf.AvgRevenuePerUnit)
	assert.Nil(t, perf.BestSeller)
	assert.Nil(t, perf.WorstSeller)
	assert.True(t, perf.PrevPeriodGrowth.IsZero())
	assert.Equal(t, model.TierAverage, perf.Summary)
}

func TestComputePerformanceTierBoundaries(t *testing.T) {
	cases := []struct {
		growth int64
		want   string
	}{
		{25, model.TierExcellent},
		{20, model.TierExcellent},
		{19, model.TierGood},
		{10, model.TierGood},
		{9, model.TierAverage},
		{0, model.TierAverage},
		{-1, model.TierPoor},
	}
	products := []model.ReportProduct{row("Combo Meal", 1, 10)}

	for _, tc := range cases {
		perf := ComputePerformance(products, &dto.ComparisonInput{PreviousPeriodGrowth: dec(tc.growth)})
		assert.Equalf(t, tc.want, perf.Summary, "growth=%d", tc.growth)
	}
}

func TestComputePerformanceTieBreakIsStable(t *testing.T) {
	products := []model.ReportProduct{
		row("Iced Tea", 7, 35),
		row("Lemonade", 7, 42),
	}
	perf := ComputePerformance(products, nil)

	// Equal units: input order decides both ends.
	require.NotNil(t, perf.BestSeller)
	assert.Equal(t, "Iced Tea", *perf.BestSeller)
	require.NotNil(t, perf.WorstSeller)
	assert.Equal(t, "Lemonade", *perf.WorstSeller)
}

func TestComputePerformanceIsPure(t *testing.T) {
	products := []model.ReportProduct{
		row("Double Patty", 3, 90),
		row("Onion Rings", 8, 40),
	}
	cmp := &dto.ComparisonInput{PreviousPeriodGrowth: dec(12)}

	first := ComputePerformance(products, cmp)
	second := ComputePerformance(products, cmp)

	assert.Equal(t, first, second)
	// Input slice order is untouched.
	assert.Equal(t, "Double Patty", products[0].ProductName)
}

// stubReportRepo is an in-memory ReportRepository for unit tests.
type stubReportRepo struct {
	reports map[uuid.UUID]*model.SalesReport
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[uuid.UUID]*model.SalesReport)}
}

func (r *stubReportRepo) Create(_ context.Context, report *model.SalesReport) error {
	report.ID = uuid.New()
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SalesReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *report
	return &cp, nil
}

func (r *stubReportRepo) List(_ context.Context) ([]model.SalesReport, error) {
	var out []model.SalesReport
	for _, report := range r.reports {
		out = append(out, *report)
	}
	return out, nil
}

func (r *stubReportRepo) Replace(_ context.Context, report *model.SalesReport) error {
	if _, ok := r.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func TestReportServiceCreateComputesPerformance(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newStubReportRepo())

	resp, err := svc.Create(ctx, dto.SaveReportRequest{
		ReportName: "Week 34",
		Period:     "2026-W34",
		Products: []dto.ReportProductInput{
			{ProductName: "Classic Burger", UnitsSold: 10, Revenue: dec(100)},
			{ProductName: "Cheese Fries", UnitsSold: 5, Revenue: dec(80)},
		},
		Comparison: &dto.ComparisonInput{PreviousPeriodGrowth: dec(25)},
	})
	require.NoError(t, err)

	assert.True(t, resp.Performance.TotalRevenue.Equal(dec(180)))
	assert.Equal(t, 15, resp.Performance.TotalUnits)
	assert.Equal(t, model.TierExcellent, resp.Performance.Summary)
}

func TestReportServiceCreateRejectsNegativeRows(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newStubReportRepo())

	_, err := svc.Create(ctx, dto.SaveReportRequest{
		ReportName: "Bad Rows",
		Period:     "2026-08",
		Products:   []dto.ReportProductInput{{ProductName: "Fries", UnitsSold: -1}},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "products", ve.Field)
}

func TestReportServiceUpdateRejectsNegativeRows(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newStubReportRepo())

	created, err := svc.Create(ctx, dto.SaveReportRequest{
		ReportName: "July",
		Period:     "2026-07",
		Products:   []dto.ReportProductInput{{ProductName: "Fries", UnitsSold: 3, Revenue: dec(30)}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// Update enforces the same row rules as Create.
	_, err = svc.Update(ctx, id, dto.SaveReportRequest{
		ReportName: "July",
		Period:     "2026-07",
		Products:   []dto.ReportProductInput{{ProductName: "Fries", UnitsSold: -5, Revenue: dec(30)}},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "products", ve.Field)

	_, err = svc.Update(ctx, id, dto.SaveReportRequest{
		ReportName: "July",
		Period:     "2026-07",
		Products:   []dto.ReportProductInput{{ProductName: "Fries", UnitsSold: 5, Revenue: dec(-10)}},
	})
	require.ErrorAs(t, err, &ve)

	// The stored report is untouched after the rejected updates.
	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Performance.TotalUnits)
	assert.True(t, got.Performance.TotalRevenue.Equal(dec(30)))
}

func TestReportServiceUpdateRecomputes(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newStubReportRepo())

	created, err := svc.Create(ctx, dto.SaveReportRequest{
		ReportName: "August",
		Period:     "2026-08",
		Products:   []dto.ReportProductInput{{ProductName: "Hotdog", UnitsSold: 4, Revenue: dec(20)}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.TierAverage, created.Performance.Summary)

	updated, err := svc.Update(ctx, uuid.MustParse(created.ID), dto.SaveReportRequest{
		ReportName: "August (rev)",
		Period:     "2026-08",
		Products: []dto.ReportProductInput{
			{ProductName: "Hotdog", UnitsSold: 4, Revenue: dec(20)},
			{ProductName: "Burger", UnitsSold: 9, Revenue: dec(90)},
		},
		Comparison: &dto.ComparisonInput{PreviousPeriodGrowth: dec(-5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "August (rev)", updated.ReportName)
	assert.True(t, updated.Performance.TotalRevenue.Equal(dec(110)))
	assert.Equal(t, 13, updated.Performance.TotalUnits)
	require.NotNil(t, updated.Performance.BestSeller)
	assert.Equal(t, "Burger", *updated.Performance.BestSeller)
	assert.Equal(t, model.TierPoor, updated.Performance.Summary)
}
