package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/reporting"
	"github.com/dinewise/pos/internal/storage"
)

const topItemLimit = 5

// AnalyticsService is the read-only reporter over historical bills and
// orders, parameterized by a time window.
type AnalyticsService struct {
	store storage.Store
	now   func() time.Time
}

// NewAnalyticsService creates an AnalyticsService backed by the given store.
func NewAnalyticsService(store storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// DailySummary reports over the current business day: the noon-to-noon
// window containing now.
func (s *AnalyticsService) DailySummary(ctx context.Context) (*models.Summary, error) {
	from, to := reporting.BusinessDayWindow(s.now())
	summary, err := s.summarize(ctx, from.Unix(), to.Unix())
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// PeriodSummary reports over an explicit calendar month (optionally with a
// year, defaulting to the current one) or a full calendar year, and adds the
// top 5 items by non-cancelled quantity.
func (s *AnalyticsService) PeriodSummary(ctx context.Context, monthName string, year int) (*models.PeriodSummary, error) {
	if monthName == "" && year == 0 {
		return nil, invalidf("a month or year is required")
	}

	now := s.now()
	loc := now.Location()
	if year == 0 {
		year = now.Year()
	}

	var from, to time.Time
	var period string
	if monthName != "" {
		month, err := reporting.ParseMonth(monthName)
		if err != nil {
			return nil, invalidf("%v", err)
		}
		from, to = reporting.MonthWindow(month, year, loc)
		period = fmt.Sprintf("%s %d", month, year)
	} else {
		from, to = reporting.YearWindow(year, loc)
		period = fmt.Sprintf("%d", year)
	}

	summary, err := s.summarize(ctx, from.Unix(), to.Unix())
	if err != nil {
		return nil, err
	}

	topItems, err := s.store.TopItemsBetween(ctx, from.Unix(), to.Unix(), topItemLimit)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return &models.PeriodSummary{
		Summary:  *summary,
		Period:   period,
		TopItems: topItems,
	}, nil
}

func (s *AnalyticsService) summarize(ctx context.Context, from, to int64) (*models.Summary, error) {
	paid, err := s.store.PaidBillsBetween(ctx, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	stats, err := s.store.OrderStatsBetween(ctx, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	active, err := s.store.ActiveOrderRefsBetween(ctx, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	summary := reporting.BuildSummary(reporting.Inputs{
		PaidBills:       paid,
		TotalOrders:     stats.Total,
		CompletedOrders: stats.Completed,
		ActiveOrders:    active,
	})
	return &summary, nil
}
