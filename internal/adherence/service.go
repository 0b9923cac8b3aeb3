package adherence

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/goals"
	"github.com/2beens/fitconnect/internal/plans"
	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type adherenceRepo interface {
	SessionTotals(ctx context.Context, memberID int, from, to pkg.Date) (SessionTotals, error)
	CompletedWorkoutDays(ctx context.Context, memberID int, from, to pkg.Date) (int, error)
	MealsLoggedDays(ctx context.Context, memberID int, from, to pkg.Date) (int, error)
	WeightSpan(ctx context.Context, memberID int, from, to pkg.Date) (WeightSpan, error)
	WaterTotals(ctx context.Context, memberID int, from, to pkg.Date) (map[string]int, error)
	CaloriesConsumed(ctx context.Context, memberID int, date pkg.Date) (int, error)
	LatestWeight(ctx context.Context, memberID int, date pkg.Date) (*float64, error)
	SaveReport(ctx context.Context, report ProgressReport) (ProgressReport, error)
	ListReports(ctx context.Context, memberID int) ([]ProgressReport, error)
	TrainerStats(ctx context.Context, trainerID int, date pkg.Date) (TrainerStats, error)
}

type goalsReader interface {
	GetGoal(ctx context.Context, memberID int, date pkg.Date) (goals.DailyGoal, error)
	ListGoals(ctx context.Context, memberID int, from, to pkg.Date) ([]goals.DailyGoal, error)
}

type plansReader interface {
	GetPlanForDate(ctx context.Context, memberID int, date pkg.Date) (plans.WorkoutPlan, error)
	GetMealPlans(ctx context.Context, memberID int, date pkg.Date) ([]plans.MealPlan, error)
}

type Service struct {
	repo           adherenceRepo
	goals          goalsReader
	plans          plansReader
	metricsManager *metrics.Manager
}

func NewService(
	repo adherenceRepo,
	goalsSvc goalsReader,
	plansSvc plansReader,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		goals:          goalsSvc,
		plans:          plansSvc,
		metricsManager: metricsManager,
	}
}

func validateRange(memberID int, from, to pkg.Date) error {
	if memberID <= 0 {
		return pkg.Validationf("member id required")
	}
	if from.IsZero() || to.IsZero() {
		return pkg.Validationf("from and to dates required")
	}
	return nil
}

// ComputeClientProgress aggregates the member's actuals over [from, to].
// A range with to before from yields an all-zero result.
func (s *Service) ComputeClientProgress(ctx context.Context, memberID int, from, to pkg.Date) (_ ClientProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	if err := validateRange(memberID, from, to); err != nil {
		return ClientProgress{}, err
	}

	progress := ClientProgress{
		MemberID:  memberID,
		From:      from,
		To:        to,
		TotalDays: pkg.InclusiveDays(from, to),
	}
	if progress.TotalDays == 0 {
		return progress, nil
	}

	var (
		totals     SessionTotals
		weight     WeightSpan
		water      map[string]int
		goalsByDay = map[string]goals.DailyGoal{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if totals, err = s.repo.SessionTotals(gctx, memberID, from, to); err != nil {
			return fmt.Errorf("session totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if progress.CompletedWorkoutDays, err = s.repo.CompletedWorkoutDays(gctx, memberID, from, to); err != nil {
			return fmt.Errorf("completed workout days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if progress.MealsLoggedDays, err = s.repo.MealsLoggedDays(gctx, memberID, from, to); err != nil {
			return fmt.Errorf("meals logged days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if weight, err = s.repo.WeightSpan(gctx, memberID, from, to); err != nil {
			return fmt.Errorf("weight span: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if water, err = s.repo.WaterTotals(gctx, memberID, from, to); err != nil {
			return fmt.Errorf("water totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		stored, err := s.goals.ListGoals(gctx, memberID, from, to)
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		for _, goal := range stored {
			goalsByDay[goal.Date.String()] = goal
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return ClientProgress{}, err
	}

	progress.WorkoutCount = totals.Count
	progress.TotalDurationMinutes = totals.DurationMinutes
	progress.TotalCaloriesBurned = totals.CaloriesBurned
	progress.AttendanceDays = totals.AttendanceDays
	progress.CompletionRate = CompletionRate(progress.CompletedWorkoutDays, progress.TotalDays)
	progress.WaterComplianceDays = waterComplianceDays(from, to, water, goalsByDay)
	progress.WaterComplianceRate = CompletionRate(progress.WaterComplianceDays, progress.TotalDays)
	progress.WeightChange, progress.WeightChangeDefined = weight.Change()

	return progress, nil
}

// ComputeWorkoutCompletionRate is the share of days in [from, to] with a completed workout, as a percentage.
func (s *Service) ComputeWorkoutCompletionRate(ctx context.Context, memberID int, from, to pkg.Date) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.completion_rate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateRange(memberID, from, to); err != nil {
		return 0, err
	}

	totalDays := pkg.InclusiveDays(from, to)
	if totalDays == 0 {
		return 0, nil
	}

	completed, err := s.repo.CompletedWorkoutDays(ctx, memberID, from, to)
	if err != nil {
		return 0, fmt.Errorf("completed workout days: %w", err)
	}

	return CompletionRate(completed, totalDays), nil
}

// SaveProgressReport snapshots the member's progress over the report range and stores it as SENT.
func (s *Service) SaveProgressReport(ctx context.Context, report ProgressReport) (_ ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.report.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := report.Validate(); err != nil {
		return ProgressReport{}, err
	}

	progress, err := s.ComputeClientProgress(ctx, report.MemberID, report.StartDate, report.EndDate)
	if err != nil {
		return ProgressReport{}, fmt.Errorf("compute progress: %w", err)
	}

	report.ID = 0
	report.CompletionRate = progress.CompletionRate
	report.MealsLogged = progress.MealsLoggedDays
	report.WaterRate = progress.WaterComplianceRate
	report.WeightChange = progress.WeightChange
	report.Status = ReportStatusSent

	stored, err := s.repo.SaveReport(ctx, report)
	if err != nil {
		return ProgressReport{}, err
	}
	s.metricsManager.CounterProgressReports.Inc()

	return stored, nil
}

func (s *Service) ListProgressReports(ctx context.Context, memberID int) (_ []ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.report.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ListReports(ctx, memberID)
}

// GetMemberDashboard collects the member's day at a glance. Missing goal or plan leave those fields empty.
func (s *Service) GetMemberDashboard(ctx context.Context, memberID int, date pkg.Date) (_ Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	if memberID <= 0 {
		return Dashboard{}, pkg.Validationf("member id required")
	}
	if date.IsZero() {
		date = pkg.Today()
	}

	d := emptyDashboard(memberID, date)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		goal, err := s.goals.GetGoal(gctx, memberID, date)
		switch {
		case err == nil:
			d.Goal = &goal
		case errors.Is(err, goals.ErrGoalNotFound):
		default:
			return fmt.Errorf("goal: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		plan, err := s.plans.GetPlanForDate(gctx, memberID, date)
		switch {
		case err == nil:
			d.PlanID = &plan.ID
			d.PlanName = plan.Name
		case errors.Is(err, plans.ErrPlanNotFound):
		default:
			return fmt.Errorf("plan for date: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		slots, err := s.plans.GetMealPlans(gctx, memberID, date)
		if err != nil {
			return fmt.Errorf("meal plans: %w", err)
		}
		d.MealPlanSlots = len(slots)
		return nil
	})
	g.Go(func() error {
		water, err := s.repo.WaterTotals(gctx, memberID, date, date)
		if err != nil {
			return fmt.Errorf("water total: %w", err)
		}
		d.WaterTotalMl = water[date.String()]
		return nil
	})
	g.Go(func() error {
		var err error
		if d.CaloriesConsumed, err = s.repo.CaloriesConsumed(gctx, memberID, date); err != nil {
			return fmt.Errorf("calories consumed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.LatestWeight, err = s.repo.LatestWeight(gctx, memberID, date); err != nil {
			return fmt.Errorf("latest weight: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.CompletedWorkoutDays, err = s.repo.CompletedWorkoutDays(gctx, memberID, pkg.Date{}, date); err != nil {
			return fmt.Errorf("completed workout days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		from := date.AddDays(-(recentWindowDays - 1))
		if d.CompletedLast7Days, err = s.repo.CompletedWorkoutDays(gctx, memberID, from, date); err != nil {
			return fmt.Errorf("recent completed workout days: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	d.Targets = goals.EffectiveTargets(d.Goal)

	return d, nil
}

func (s *Service) GetTrainerStats(ctx context.Context, trainerID int, date pkg.Date) (_ TrainerStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.adherence.trainer_stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if trainerID <= 0 {
		return TrainerStats{}, pkg.Validationf("trainer id required")
	}
	if date.IsZero() {
		date = pkg.Today()
	}

	return s.repo.TrainerStats(ctx, trainerID, date)
}
