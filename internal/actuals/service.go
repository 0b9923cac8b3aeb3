package actuals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	log "github.com/sirupsen/logrus"
)

const logTimeLayout = "15:04"

type actualsRepo interface {
	CreateSession(ctx context.Context, session WorkoutSession) (WorkoutSession, error)
	AppendSetLogs(ctx context.Context, sessionID int, logs []SetLog) ([]SetLog, error)
	RecordWorkout(ctx context.Context, session WorkoutSession, logs []SetLog) (WorkoutSession, error)
	GetSession(ctx context.Context, id int) (WorkoutSession, error)
	GetSessionsForDate(ctx context.Context, memberID int, date pkg.Date) ([]WorkoutSession, error)
	GetSessionLogs(ctx context.Context, sessionID int) ([]SetLog, error)

	LogMeal(ctx context.Context, entry MealLogEntry) (MealLogEntry, error)
	GetMealLog(ctx context.Context, id int) (MealLogEntry, error)
	DeleteMealLog(ctx context.Context, id int) (MealLogEntry, error)
	GetMealsForDate(ctx context.Context, memberID int, date pkg.Date) ([]MealLogEntry, error)

	AddWeightSample(ctx context.Context, sample WeightSample) (WeightSample, error)
	GetWeightHistory(ctx context.Context, memberID int, from, to pkg.Date) ([]WeightSample, error)

	AddWaterEvent(ctx context.Context, event WaterEvent) (WaterEvent, error)
	GetWaterEvent(ctx context.Context, id int) (WaterEvent, error)
	DeleteWaterEvent(ctx context.Context, id int) error
	GetWaterEventsForDate(ctx context.Context, memberID int, date pkg.Date) ([]WaterEvent, error)
	GetWaterHistory(ctx context.Context, memberID int, to pkg.Date, days int) ([]WaterDay, error)

	ReconcileCalories(ctx context.Context, since pkg.Date) (int, error)
}

type foodLookup interface {
	Food(ctx context.Context, id int) (catalog.Food, error)
}

type Service struct {
	repo           actualsRepo
	foods          foodLookup
	metricsManager *metrics.Manager
}

func NewService(repo actualsRepo, foods foodLookup, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		foods:          foods,
		metricsManager: metricsManager,
	}
}

// CreateWorkoutSession stores a session without logs. It counts as completed only once
// logs are appended.
func (s *Service) CreateWorkoutSession(ctx context.Context, session WorkoutSession) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.Date.IsZero() {
		session.Date = pkg.Today()
	}
	if err := session.Validate(); err != nil {
		return WorkoutSession{}, err
	}

	stored, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return WorkoutSession{}, fmt.Errorf("create workout session: %w", err)
	}
	s.metricsManager.CounterSessionsRecorded.Inc()

	return stored, nil
}

func (s *Service) AppendSetLogs(ctx context.Context, sessionID int, logs []SetLog) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.append_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(logs) == 0 {
		return nil, pkg.Validationf("at least one set log required")
	}
	if err := validateSetLogs(logs); err != nil {
		return nil, err
	}

	stored, err := s.repo.AppendSetLogs(ctx, sessionID, logs)
	if err != nil {
		return nil, fmt.Errorf("append set logs to session %d: %w", sessionID, err)
	}
	s.metricsManager.CounterSetLogsRecorded.Add(float64(len(stored)))

	return stored, nil
}

// RecordWorkout stores a performed workout and its logs in one go.
func (s *Service) RecordWorkout(ctx context.Context, session WorkoutSession, logs []SetLog) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.Date.IsZero() {
		session.Date = pkg.Today()
	}
	if err := session.Validate(); err != nil {
		return WorkoutSession{}, err
	}
	if err := validateSetLogs(logs); err != nil {
		return WorkoutSession{}, err
	}

	stored, err := s.repo.RecordWorkout(ctx, session, logs)
	if err != nil {
		return WorkoutSession{}, fmt.Errorf("record workout: %w", err)
	}
	s.metricsManager.CounterSessionsRecorded.Inc()
	s.metricsManager.CounterSetLogsRecorded.Add(float64(len(stored.Logs)))
	log.Debugf("workout session %d recorded for member %d with %d sets", stored.ID, stored.MemberID, len(stored.Logs))

	return stored, nil
}

func (s *Service) GetSession(ctx context.Context, id int) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetSession(ctx, id)
}

func (s *Service) GetSessionsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetSessionsForDate(ctx, memberID, date)
}

func (s *Service) GetSessionLogs(ctx context.Context, sessionID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.session.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetSessionLogs(ctx, sessionID)
}

// LogMeal resolves the entry's foods, computes per-item nutrition and the entry totals,
// and stores it. The member's daily calorie counter grows by the computed total.
func (s *Service) LogMeal(ctx context.Context, entry MealLogEntry) (_ MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.meal.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if entry.MemberID <= 0 {
		return MealLogEntry{}, pkg.Validationf("member id required")
	}
	if entry.Date.IsZero() {
		entry.Date = pkg.Today()
	}
	if !entry.Slot.Valid() {
		return MealLogEntry{}, pkg.Validationf("invalid meal slot [%s]", entry.Slot)
	}
	if entry.Time == "" {
		entry.Time = time.Now().Format(logTimeLayout)
	} else if _, err := time.Parse(logTimeLayout, entry.Time); err != nil {
		return MealLogEntry{}, pkg.Validationf("invalid meal time [%s], want HH:MM", entry.Time)
	}
	if len(entry.Items) == 0 {
		return MealLogEntry{}, pkg.Validationf("at least one meal item required")
	}

	entry.Totals = catalog.Nutrition{}
	for i, item := range entry.Items {
		if item.Quantity <= 0 {
			return MealLogEntry{}, pkg.Validationf("meal item %d: quantity must be positive, got %v", i, item.Quantity)
		}
		food, err := s.foods.Food(ctx, item.FoodID)
		if err != nil {
			if errors.Is(err, catalog.ErrFoodNotFound) {
				return MealLogEntry{}, pkg.Validationf("meal item %d: unknown food %d", i, item.FoodID)
			}
			return MealLogEntry{}, fmt.Errorf("meal item %d: %w", i, err)
		}
		entry.Items[i].FoodName = food.Name
		entry.Items[i].Nutrition = food.Scaled(item.Quantity)
		entry.Totals = entry.Totals.Add(entry.Items[i].Nutrition)
	}

	stored, err := s.repo.LogMeal(ctx, entry)
	if err != nil {
		return MealLogEntry{}, fmt.Errorf("log meal: %w", err)
	}
	for i := range stored.Items {
		stored.Items[i].FoodName = entry.Items[i].FoodName
		stored.Items[i].Nutrition = entry.Items[i].Nutrition
	}
	s.metricsManager.CounterMealsLogged.WithLabelValues(string(entry.Slot)).Inc()

	return stored, nil
}

func (s *Service) GetMealLog(ctx context.Context, id int) (_ MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.meal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetMealLog(ctx, id)
}

func (s *Service) DeleteMealLog(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.meal.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.repo.DeleteMealLog(ctx, id)
	if err != nil {
		return fmt.Errorf("delete meal log %d: %w", id, err)
	}
	log.Debugf("meal log %d deleted, %d kcal taken off member %d [%s]", id, deleted.Totals.Calories, deleted.MemberID, deleted.Date)

	return nil
}

func (s *Service) GetMealsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.meal.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetMealsForDate(ctx, memberID, date)
}

// LogWeight appends a sample. Several samples on the same date are all kept.
func (s *Service) LogWeight(ctx context.Context, sample WeightSample) (_ WeightSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.weight.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if sample.MemberID <= 0 {
		return WeightSample{}, pkg.Validationf("member id required")
	}
	if sample.Weight <= 0 {
		return WeightSample{}, pkg.Validationf("weight must be positive, got %v", sample.Weight)
	}
	if sample.Date.IsZero() {
		sample.Date = pkg.Today()
	}

	stored, err := s.repo.AddWeightSample(ctx, sample)
	if err != nil {
		return WeightSample{}, fmt.Errorf("log weight: %w", err)
	}
	s.metricsManager.CounterWeightSamples.Inc()

	return stored, nil
}

func (s *Service) GetWeightHistory(ctx context.Context, memberID int, from, to pkg.Date) (_ []WeightSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.weight.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return nil, pkg.Validationf("range end %s before start %s", to, from)
	}

	return s.repo.GetWeightHistory(ctx, memberID, from, to)
}

func (s *Service) RecordWaterEvent(ctx context.Context, event WaterEvent) (_ WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.water.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if event.MemberID <= 0 {
		return WaterEvent{}, pkg.Validationf("member id required")
	}
	if event.AmountMl <= 0 {
		return WaterEvent{}, pkg.Validationf("water amount must be positive, got %d", event.AmountMl)
	}
	if event.Date.IsZero() {
		event.Date = pkg.Today()
	}

	stored, err := s.repo.AddWaterEvent(ctx, event)
	if err != nil {
		return WaterEvent{}, fmt.Errorf("record water event: %w", err)
	}
	s.metricsManager.CounterWaterEvents.Inc()

	return stored, nil
}

func (s *Service) GetWaterEvent(ctx context.Context, id int) (_ WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.water.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetWaterEvent(ctx, id)
}

func (s *Service) DeleteWaterEvent(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.water.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteWaterEvent(ctx, id)
}

func (s *Service) GetWaterEventsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.water.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetWaterEventsForDate(ctx, memberID, date)
}

// GetWaterHistory returns per-day water totals for the last days days, today included.
// A non-positive days falls back to DefaultWaterHistoryDays.
func (s *Service) GetWaterHistory(ctx context.Context, memberID int, days int) (_ []WaterDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.water.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if days <= 0 {
		days = DefaultWaterHistoryDays
	}
	if days > MaxWaterHistoryDays {
		return nil, pkg.Validationf("water history covers at most %d days, got %d", MaxWaterHistoryDays, days)
	}

	return s.repo.GetWaterHistory(ctx, memberID, pkg.Today(), days)
}

// ReconcileCalories repairs drifted daily calorie counters of the last windowDays days.
func (s *Service) ReconcileCalories(ctx context.Context, windowDays int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.actuals.calories.reconcile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if windowDays <= 0 {
		return 0, pkg.Validationf("reconcile window must be positive, got %d", windowDays)
	}

	start := time.Now()
	fixed, err := s.repo.ReconcileCalories(ctx, pkg.Today().AddDays(-(windowDays - 1)))
	s.metricsManager.HistReconcileDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("reconcile calories: %w", err)
	}
	s.metricsManager.CounterDailyLogsReconciled.Add(float64(fixed))

	return fixed, nil
}
