package adherence

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) SessionTotals(ctx context.Context, memberID int, from, to pkg.Date) (_ SessionTotals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.session_totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	var t SessionTotals
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT count(*),
				COALESCE(sum(duration_minutes), 0),
				COALESCE(sum(calories_burned), 0),
				count(DISTINCT session_date)
			FROM workout_sessions
			WHERE member_id = $1 AND session_date BETWEEN $2 AND $3
		`,
		memberID, from, to,
	).Scan(&t.Count, &t.DurationMinutes, &t.CaloriesBurned, &t.AttendanceDays); err != nil {
		return SessionTotals{}, fmt.Errorf("session totals [query row]: %w", err)
	}

	return t, nil
}

// CompletedWorkoutDays counts daily logs flagged workout_completed with log_date in [from, to].
// A zero from leaves the range open at the start.
func (r *Repo) CompletedWorkoutDays(ctx context.Context, memberID int, from, to pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.completed_days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT count(*)
			FROM daily_logs
			WHERE member_id = $1 AND workout_completed
				AND ($2::date IS NULL OR log_date >= $2::date)
				AND log_date <= $3
		`,
		memberID, from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("completed workout days [query row]: %w", err)
	}

	return count, nil
}

func (r *Repo) MealsLoggedDays(ctx context.Context, memberID int, from, to pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.meals_logged_days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT count(*)
			FROM daily_logs
			WHERE member_id = $1 AND log_date BETWEEN $2 AND $3 AND calories_consumed > 0
		`,
		memberID, from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("meals logged days [query row]: %w", err)
	}

	return count, nil
}

func (r *Repo) WeightSpan(ctx context.Context, memberID int, from, to pkg.Date) (_ WeightSpan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.weight_span")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w WeightSpan
	if err := r.db.QueryRow(
		ctx,
		`
			WITH samples AS (
				SELECT id, sample_date, weight::float8 AS weight
				FROM weight_samples
				WHERE member_id = $1 AND sample_date BETWEEN $2 AND $3
			)
			SELECT
				(SELECT count(*) FROM samples),
				COALESCE((SELECT weight FROM samples ORDER BY sample_date, id LIMIT 1), 0),
				COALESCE((SELECT weight FROM samples ORDER BY sample_date DESC, id DESC LIMIT 1), 0)
		`,
		memberID, from, to,
	).Scan(&w.Samples, &w.First, &w.Last); err != nil {
		return WeightSpan{}, fmt.Errorf("weight span [query row]: %w", err)
	}

	return w, nil
}

// WaterTotals sums water events per day in [from, to], keyed by date string. Days without events are absent.
func (r *Repo) WaterTotals(ctx context.Context, memberID int, from, to pkg.Date) (_ map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.water_totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT event_date, sum(amount_ml)::int
			FROM water_events
			WHERE member_id = $1 AND event_date BETWEEN $2 AND $3
			GROUP BY event_date
		`,
		memberID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("water totals [query]: %w", err)
	}
	defer rows.Close()

	totals := map[string]int{}
	for rows.Next() {
		var (
			date  pkg.Date
			total int
		)
		if err := rows.Scan(&date, &total); err != nil {
			return nil, fmt.Errorf("water totals [rows scan]: %w", err)
		}
		totals[date.String()] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("water totals [rows error]: %w", err)
	}

	return totals, nil
}

// CaloriesConsumed reads the maintained counter for the day, 0 when no daily log exists.
func (r *Repo) CaloriesConsumed(ctx context.Context, memberID int, date pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.calories_consumed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var calories int
	err = r.db.QueryRow(
		ctx,
		`SELECT calories_consumed FROM daily_logs WHERE member_id = $1 AND log_date = $2`,
		memberID, date,
	).Scan(&calories)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("calories consumed [query row]: %w", err)
	}

	return calories, nil
}

// LatestWeight returns the most recent sample on or before date, nil when there is none.
func (r *Repo) LatestWeight(ctx context.Context, memberID int, date pkg.Date) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.latest_weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var weight float64
	err = r.db.QueryRow(
		ctx,
		`
			SELECT weight::float8
			FROM weight_samples
			WHERE member_id = $1 AND sample_date <= $2
			ORDER BY sample_date DESC, id DESC
			LIMIT 1
		`,
		memberID, date,
	).Scan(&weight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weight [query row]: %w", err)
	}

	return &weight, nil
}

func (r *Repo) SaveReport(ctx context.Context, report ProgressReport) (_ ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.report.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", report.MemberID))
	span.SetAttributes(attribute.Int("trainer.id", report.TrainerID))

	if err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO progress_reports (
				trainer_id, member_id, start_date, end_date, completion_rate,
				meals_logged, water_rate, weight_change, feedback, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, generated_at
		`,
		report.TrainerID, report.MemberID, report.StartDate, report.EndDate, report.CompletionRate,
		report.MealsLogged, report.WaterRate, report.WeightChange, report.Feedback, report.Status,
	).Scan(&report.ID, &report.GeneratedAt); err != nil {
		return ProgressReport{}, fmt.Errorf("save progress report: %w", err)
	}

	return report, nil
}

// ListReports returns the member's reports, newest first.
func (r *Repo) ListReports(ctx context.Context, memberID int) (_ []ProgressReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.report.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, trainer_id, member_id, start_date, end_date, generated_at, completion_rate,
				meals_logged, water_rate, weight_change, feedback, status
			FROM progress_reports
			WHERE member_id = $1
			ORDER BY generated_at DESC, id DESC
		`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("progress reports [query]: %w", err)
	}
	defer rows.Close()

	reports := []ProgressReport{}
	for rows.Next() {
		var p ProgressReport
		if err := rows.Scan(
			&p.ID, &p.TrainerID, &p.MemberID, &p.StartDate, &p.EndDate, &p.GeneratedAt, &p.CompletionRate,
			&p.MealsLogged, &p.WaterRate, &p.WeightChange, &p.Feedback, &p.Status,
		); err != nil {
			return nil, fmt.Errorf("progress reports [rows scan]: %w", err)
		}
		reports = append(reports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress reports [rows error]: %w", err)
	}

	return reports, nil
}

// TrainerStats counts the trainer's plans completed on date, those still ACTIVE, and the
// members currently assigned to the trainer.
func (r *Repo) TrainerStats(ctx context.Context, trainerID int, date pkg.Date) (_ TrainerStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adherence.trainer_stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	stats := TrainerStats{TrainerID: trainerID, Date: date}
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT
				count(*) FILTER (WHERE status = 'COMPLETED' AND (updated_at AT TIME ZONE 'UTC')::date = $2),
				count(*) FILTER (WHERE status = 'ACTIVE'),
				(SELECT count(*) FROM trainer_assignments WHERE trainer_id = $1 AND status = 'ACTIVE')
			FROM workout_plans
			WHERE trainer_id = $1
		`,
		trainerID, date,
	).Scan(&stats.PlansCompleted, &stats.ActivePlans, &stats.ClientsCount); err != nil {
		return TrainerStats{}, fmt.Errorf("trainer stats [query row]: %w", err)
	}

	return stats, nil
}
