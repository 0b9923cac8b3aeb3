package goals

import (
	"context"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"
)

type goalsRepo interface {
	Upsert(ctx context.Context, goal DailyGoal) (DailyGoal, error)
	UpsertSpan(ctx context.Context, base DailyGoal, days int) ([]DailyGoal, error)
	Get(ctx context.Context, memberID int, date pkg.Date) (DailyGoal, error)
	ListRange(ctx context.Context, memberID int, from, to pkg.Date) ([]DailyGoal, error)
}

type Service struct {
	repo           goalsRepo
	metricsManager *metrics.Manager
}

func NewService(repo goalsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (s *Service) SetDailyGoal(ctx context.Context, goal DailyGoal) (_ DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := goal.Validate(); err != nil {
		return DailyGoal{}, err
	}

	stored, err := s.repo.Upsert(ctx, goal)
	if err != nil {
		return DailyGoal{}, fmt.Errorf("set daily goal: %w", err)
	}
	s.metricsManager.CounterGoalsSet.Inc()

	return stored, nil
}

// SetGoalsForSpan replicates base's targets across days consecutive dates starting at base.Date.
func (s *Service) SetGoalsForSpan(ctx context.Context, base DailyGoal, days int) (_ []DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.set_span")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := base.Validate(); err != nil {
		return nil, err
	}
	if days < 1 || days > MaxSpanDays {
		return nil, pkg.Validationf("days must be between 1 and %d, got %d", MaxSpanDays, days)
	}

	stored, err := s.repo.UpsertSpan(ctx, base, days)
	if err != nil {
		return nil, fmt.Errorf("set goals for span: %w", err)
	}
	s.metricsManager.CounterGoalsSet.Add(float64(len(stored)))

	return stored, nil
}

// GetGoal returns ErrGoalNotFound when nothing is stored for the day.
func (s *Service) GetGoal(ctx context.Context, memberID int, date pkg.Date) (_ DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Get(ctx, memberID, date)
}

func (s *Service) ListGoals(ctx context.Context, memberID int, from, to pkg.Date) (_ []DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return []DailyGoal{}, nil
	}
	return s.repo.ListRange(ctx, memberID, from, to)
}
