package metrics

import (
	"context"
	"time"
)

type Repository interface {
	// PeriodAggregates computes the spec'd aggregates over one window.
	PeriodAggregates(
		ctx context.Context,
		w Window,
	) (*PeriodAggregates, error)

	// -------- Charts --------
	OrdersPerMonth(
		ctx context.Context,
		since time.Time,
	) ([]MonthOrders, error)

	RevenuePerMonth(
		ctx context.Context,
		since time.Time,
	) ([]MonthRevenue, error)

	StatusDistribution(
		ctx context.Context,
		since time.Time,
	) ([]StatusCount, error)

	PriorityDistribution(
		ctx context.Context,
		since time.Time,
	) ([]PriorityCount, error)

	// -------- Performance / revenue --------
	TechnicianPerformance(
		ctx context.Context,
		since time.Time,
	) ([]TechnicianPerformance, error)

	RevenueSummary(
		ctx context.Context,
	) (*RevenueSummary, error)
}
