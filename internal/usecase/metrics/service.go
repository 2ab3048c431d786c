package metrics

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/ostech-br/os-manager/internal/domain/metrics"
)

// ======================================================
// USE CASE — DASHBOARD / CHARTS / REVENUE
// ======================================================

type Service struct {
	repo domain.Repository
	now  func() time.Time
}

func NewService(repo domain.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Dashboard resolves the two comparison windows and fans the
// sub-queries out concurrently. Qualquer falha aborta o agregado
// inteiro: nunca devolvemos resultado parcial.
func (s *Service) Dashboard(
	ctx context.Context,
	r domain.Range,
) (*domain.Dashboard, error) {

	now := s.now()
	current, previous := domain.Resolve(r, now)

	var (
		cur, prev   *domain.PeriodAggregates
		technicians []domain.TechnicianPerformance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cur, err = s.repo.PeriodAggregates(gctx, current)
		return err
	})
	g.Go(func() error {
		var err error
		prev, err = s.repo.PeriodAggregates(gctx, previous)
		return err
	})
	g.Go(func() error {
		var err error
		technicians, err = s.repo.TechnicianPerformance(gctx, domain.MonthStart(now))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	trends := domain.Trends(cur, prev)

	// O card do dashboard mostra horas inteiras; a tendência é
	// calculada sobre o valor bruto, antes do arredondamento.
	cur.AvgHours = math.Round(cur.AvgHours)

	return &domain.Dashboard{
		Current:     cur,
		Trends:      trends,
		Technicians: technicians,
	}, nil
}

// Charts produces the trailing six-month series plus the current-month
// status and priority distributions.
func (s *Service) Charts(ctx context.Context) (*domain.Charts, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sixMonthsAgo := today.AddDate(0, -6, 0)
	monthStart := domain.MonthStart(now)

	var charts domain.Charts

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		charts.OrdersPerMonth, err = s.repo.OrdersPerMonth(gctx, sixMonthsAgo)
		return err
	})
	g.Go(func() error {
		var err error
		charts.RevenuePerMonth, err = s.repo.RevenuePerMonth(gctx, sixMonthsAgo)
		return err
	})
	g.Go(func() error {
		var err error
		charts.OrdersByStatus, err = s.repo.StatusDistribution(gctx, monthStart)
		return err
	})
	g.Go(func() error {
		var err error
		charts.OrdersByPriority, err = s.repo.PriorityDistribution(gctx, monthStart)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &charts, nil
}

func (s *Service) Revenue(ctx context.Context) (*domain.RevenueSummary, error) {
	return s.repo.RevenueSummary(ctx)
}
