package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/ostech-br/os-manager/internal/domain/metrics"
)

type MetricsGormRepository struct {
	db *gorm.DB
}

func NewMetricsGormRepository(db *gorm.DB) *MetricsGormRepository {
	return &MetricsGormRepository{db: db}
}

// --------------------------------------------------
// Period aggregates
// --------------------------------------------------

type periodRow struct {
	TotalOrders        int     `gorm:"column:total_orders"`
	OpenOrders         int     `gorm:"column:open_orders"`
	InProgressOrders   int     `gorm:"column:in_progress_orders"`
	CompletedOrders    int     `gorm:"column:completed_orders"`
	UrgentOrders       int     `gorm:"column:urgent_orders"`
	WaitingApproval    int     `gorm:"column:waiting_approval"`
	TotalRevenue       float64 `gorm:"column:total_revenue"`
	AvgCompletionHours float64 `gorm:"column:avg_completion_hours"`
}

const periodAggregatesSelect = `
	SELECT
		COUNT(*) AS total_orders,
		COUNT(*) FILTER (WHERE status = 'open') AS open_orders,
		COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress_orders,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed_orders,
		COUNT(*) FILTER (WHERE priority = 'urgent') AS urgent_orders,
		COUNT(*) FILTER (WHERE status = 'waiting_approval') AS waiting_approval,
		COALESCE(SUM(final_cost) FILTER (WHERE status = 'completed'), 0) AS total_revenue,
		COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at))/3600)
			FILTER (WHERE status = 'completed'), 0) AS avg_completion_hours
	FROM service_orders`

func (r *MetricsGormRepository) PeriodAggregates(
	ctx context.Context,
	w domain.Window,
) (*domain.PeriodAggregates, error) {

	query := periodAggregatesSelect + " WHERE created_at >= ?"
	args := []any{w.Start}
	if !w.Open() {
		query += " AND created_at < ?"
		args = append(args, w.End)
	}

	var row periodRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return nil, err
	}

	return &domain.PeriodAggregates{
		TotalOrders:     row.TotalOrders,
		OpenOrders:      row.OpenOrders,
		InProgress:      row.InProgressOrders,
		Completed:       row.CompletedOrders,
		Urgent:          row.UrgentOrders,
		WaitingApproval: row.WaitingApproval,
		Revenue:         row.TotalRevenue,
		AvgHours:        row.AvgCompletionHours,
	}, nil
}

// --------------------------------------------------
// Charts (últimos 6 meses / mês corrente)
// --------------------------------------------------

func (r *MetricsGormRepository) OrdersPerMonth(
	ctx context.Context,
	since time.Time,
) ([]domain.MonthOrders, error) {

	var rows []domain.MonthOrders
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month,
			TO_CHAR(DATE_TRUNC('month', created_at), 'Mon/YY') AS month_label,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'open') AS open,
			COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress
		FROM service_orders
		WHERE created_at >= ?
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MetricsGormRepository) RevenuePerMonth(
	ctx context.Context,
	since time.Time,
) ([]domain.MonthRevenue, error) {

	var rows []domain.MonthRevenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month,
			TO_CHAR(DATE_TRUNC('month', created_at), 'Mon/YY') AS month_label,
			COALESCE(SUM(final_cost), 0) AS revenue,
			COUNT(*) AS orders_count
		FROM service_orders
		WHERE status = 'completed'
		  AND created_at >= ?
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MetricsGormRepository) StatusDistribution(
	ctx context.Context,
	since time.Time,
) ([]domain.StatusCount, error) {

	var rows []domain.StatusCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM service_orders
		WHERE created_at >= ?
		GROUP BY status
		ORDER BY count DESC`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MetricsGormRepository) PriorityDistribution(
	ctx context.Context,
	since time.Time,
) ([]domain.PriorityCount, error) {

	var rows []domain.PriorityCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT priority, COUNT(*) AS count
		FROM service_orders
		WHERE created_at >= ?
		GROUP BY priority
		ORDER BY
			CASE priority
				WHEN 'urgent' THEN 1
				WHEN 'high' THEN 2
				WHEN 'normal' THEN 3
				WHEN 'low' THEN 4
			END`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Technician performance / revenue summary
// --------------------------------------------------

func (r *MetricsGormRepository) TechnicianPerformance(
	ctx context.Context,
	since time.Time,
) ([]domain.TechnicianPerformance, error) {

	var rows []domain.TechnicianPerformance
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.name AS technician_name,
			COUNT(so.id) AS completed_orders,
			COALESCE(AVG(so.final_cost), 0) AS avg_ticket,
			COALESCE(SUM(so.final_cost), 0) AS total_revenue,
			COALESCE(ROUND(
				AVG(EXTRACT(EPOCH FROM (so.updated_at - so.created_at)) / 86400),
				2
			), 0) AS avg_completion_days
		FROM service_orders so
		LEFT JOIN users u ON so.technician_id = u.id
		WHERE so.status = 'completed'
		  AND so.created_at >= ?
		GROUP BY u.id, u.name
		ORDER BY total_revenue DESC`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MetricsGormRepository) RevenueSummary(
	ctx context.Context,
) (*domain.RevenueSummary, error) {

	var row domain.RevenueSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(final_cost) FILTER (WHERE created_at >= DATE_TRUNC('day', CURRENT_DATE)), 0) AS today,
			COALESCE(SUM(final_cost) FILTER (WHERE created_at >= DATE_TRUNC('week', CURRENT_DATE)), 0) AS this_week,
			COALESCE(SUM(final_cost) FILTER (WHERE created_at >= DATE_TRUNC('month', CURRENT_DATE)), 0) AS this_month,
			COALESCE(SUM(final_cost) FILTER (WHERE created_at >= DATE_TRUNC('year', CURRENT_DATE)), 0) AS this_year,
			COALESCE(AVG(final_cost), 0) AS average_ticket,
			COUNT(*) AS completed_count
		FROM service_orders
		WHERE status = 'completed'`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Compile-time check
var _ domain.Repository = (*MetricsGormRepository)(nil)
