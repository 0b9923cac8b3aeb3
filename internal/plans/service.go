package plans

import (
	"context"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

type plansRepo interface {
	CreateWorkoutPlan(ctx context.Context, plan WorkoutPlan, rejectOverlapping bool) (WorkoutPlan, error)
	GetPlan(ctx context.Context, id int) (WorkoutPlan, error)
	ListPlansForMember(ctx context.Context, memberID int) ([]WorkoutPlan, error)
	GetPlanForDate(ctx context.Context, memberID int, date pkg.Date) (WorkoutPlan, error)
	GetPlanExercises(ctx context.Context, planID int) ([]PlanExercise, error)
	UpdatePlanStatus(ctx context.Context, planID int, status Status) error
	MarkComplete(ctx context.Context, planID int, date pkg.Date) (int, error)
	AssignMealPlans(ctx context.Context, trainerID, memberID int, date pkg.Date, slots []MealPlan) ([]MealPlan, error)
	GetMealPlans(ctx context.Context, memberID int, date pkg.Date) ([]MealPlan, error)
}

type Service struct {
	repo              plansRepo
	metricsManager    *metrics.Manager
	rejectOverlapping bool
}

func NewService(repo plansRepo, metricsManager *metrics.Manager, rejectOverlapping bool) *Service {
	return &Service{
		repo:              repo,
		metricsManager:    metricsManager,
		rejectOverlapping: rejectOverlapping,
	}
}

func (s *Service) CreateWorkoutPlan(ctx context.Context, plan WorkoutPlan) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := plan.Validate(); err != nil {
		return WorkoutPlan{}, err
	}

	stored, err := s.repo.CreateWorkoutPlan(ctx, plan, s.rejectOverlapping)
	if err != nil {
		return WorkoutPlan{}, fmt.Errorf("create workout plan: %w", err)
	}
	s.metricsManager.CounterWorkoutPlansCreated.Inc()
	log.Debugf("workout plan %d created for member %d with %d exercises", stored.ID, stored.MemberID, len(stored.Exercises))

	return stored, nil
}

func (s *Service) GetPlan(ctx context.Context, id int) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetPlan(ctx, id)
}

func (s *Service) ListPlansForMember(ctx context.Context, memberID int) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ListPlansForMember(ctx, memberID)
}

// GetPlanForDate returns the plan in effect on date with its exercises, or ErrPlanNotFound.
func (s *Service) GetPlanForDate(ctx context.Context, memberID int, date pkg.Date) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := s.repo.GetPlanForDate(ctx, memberID, date)
	if err != nil {
		return WorkoutPlan{}, err
	}

	plan.Exercises, err = s.repo.GetPlanExercises(ctx, plan.ID)
	if err != nil {
		return WorkoutPlan{}, fmt.Errorf("plan %d exercises: %w", plan.ID, err)
	}

	return plan, nil
}

func (s *Service) GetPlanExercises(ctx context.Context, planID int) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetPlanExercises(ctx, planID)
}

func (s *Service) UpdatePlanStatus(ctx context.Context, planID int, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.update_status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !status.Valid() {
		return pkg.Validationf("invalid plan status [%s]", status)
	}

	return s.repo.UpdatePlanStatus(ctx, planID, status)
}

// MarkAsComplete completes an ACTIVE plan and records the session for date.
// It returns the new session id.
func (s *Service) MarkAsComplete(ctx context.Context, planID int, date pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.workout.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date.IsZero() {
		date = pkg.Today()
	}

	sessionID, err := s.repo.MarkComplete(ctx, planID, date)
	if err != nil {
		return 0, fmt.Errorf("mark plan %d complete: %w", planID, err)
	}
	s.metricsManager.CounterWorkoutPlansCompleted.Inc()
	s.metricsManager.CounterSessionsRecorded.Inc()

	return sessionID, nil
}

// AssignMealPlans replaces the given slots of the member's meal plan for date.
// Slots not present in the call are left untouched.
func (s *Service) AssignMealPlans(ctx context.Context, trainerID, memberID int, date pkg.Date, slots []MealPlan) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.meal.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if trainerID <= 0 || memberID <= 0 {
		return nil, pkg.Validationf("trainer and member ids required")
	}
	if date.IsZero() {
		return nil, pkg.Validationf("plan date required")
	}
	if len(slots) == 0 {
		return nil, pkg.Validationf("at least one meal slot required")
	}
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	stored, err := s.repo.AssignMealPlans(ctx, trainerID, memberID, date, slots)
	if err != nil {
		return nil, fmt.Errorf("assign meal plans: %w", err)
	}
	s.metricsManager.CounterMealPlansAssigned.Add(float64(len(stored)))

	return stored, nil
}

func (s *Service) GetMealPlans(ctx context.Context, memberID int, date pkg.Date) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.meal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetMealPlans(ctx, memberID, date)
}
