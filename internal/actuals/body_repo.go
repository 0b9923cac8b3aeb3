package actuals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) AddWeightSample(ctx context.Context, sample WeightSample) (_ WeightSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.weight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", sample.MemberID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO weight_samples (member_id, sample_date, weight, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`,
		sample.MemberID, sample.Date, sample.Weight, sample.Notes,
	).Scan(&sample.ID, &sample.CreatedAt)
	if err != nil {
		return WeightSample{}, fmt.Errorf("insert weight sample: %w", err)
	}

	return sample, nil
}

// GetWeightHistory returns samples in [from, to] ordered by date, then by insertion.
func (r *Repo) GetWeightHistory(ctx context.Context, memberID int, from, to pkg.Date) (_ []WeightSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.weight.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, member_id, sample_date, weight::float8, notes, created_at
			FROM weight_samples
			WHERE member_id = $1 AND sample_date BETWEEN $2 AND $3
			ORDER BY sample_date, id
		`,
		memberID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("weight samples [query]: %w", err)
	}
	defer rows.Close()

	samples := []WeightSample{}
	for rows.Next() {
		var s WeightSample
		if err := rows.Scan(&s.ID, &s.MemberID, &s.Date, &s.Weight, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("weight samples [rows scan]: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weight samples [rows error]: %w", err)
	}

	return samples, nil
}

func (r *Repo) AddWaterEvent(ctx context.Context, event WaterEvent) (_ WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", event.MemberID))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO water_events (member_id, event_date, amount_ml)
			VALUES ($1, $2, $3)
			RETURNING id, logged_at
		`,
		event.MemberID, event.Date, event.AmountMl,
	).Scan(&event.ID, &event.LoggedAt)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return WaterEvent{}, pkg.Validationf("water amount must be positive")
		}
		return WaterEvent{}, fmt.Errorf("insert water event: %w", err)
	}

	return event, nil
}

func scanWaterEvent(row pgx.Row) (WaterEvent, error) {
	var e WaterEvent
	err := row.Scan(&e.ID, &e.MemberID, &e.Date, &e.LoggedAt, &e.AmountMl)
	return e, err
}

func (r *Repo) GetWaterEvent(ctx context.Context, id int) (_ WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.water.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := scanWaterEvent(r.db.QueryRow(
		ctx,
		`SELECT id, member_id, event_date, logged_at, amount_ml FROM water_events WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WaterEvent{}, ErrWaterEventNotFound
		}
		return WaterEvent{}, fmt.Errorf("water event [query row]: %w", err)
	}

	return e, nil
}

func (r *Repo) DeleteWaterEvent(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.water.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("water_event.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM water_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete water event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWaterEventNotFound
	}

	return nil
}

func (r *Repo) GetWaterEventsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []WaterEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.water.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.String("date", date.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, member_id, event_date, logged_at, amount_ml
			FROM water_events
			WHERE member_id = $1 AND event_date = $2
			ORDER BY logged_at, id
		`,
		memberID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("water events [query]: %w", err)
	}
	defer rows.Close()

	events := []WaterEvent{}
	for rows.Next() {
		e, err := scanWaterEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("water events [rows scan]: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("water events [rows error]: %w", err)
	}

	return events, nil
}

// GetWaterHistory returns one live total per day for the days ending at to, oldest first.
// Days without events are reported with a zero total.
func (r *Repo) GetWaterHistory(ctx context.Context, memberID int, to pkg.Date, days int) (_ []WaterDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.water.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.Int("days", days))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT d::date, COALESCE(SUM(w.amount_ml), 0)::int
			FROM generate_series($2::date - ($3::int - 1), $2::date, interval '1 day') AS d
			LEFT JOIN water_events w ON w.member_id = $1 AND w.event_date = d::date
			GROUP BY d
			ORDER BY d
		`,
		memberID, to, days,
	)
	if err != nil {
		return nil, fmt.Errorf("water history [query]: %w", err)
	}
	defer rows.Close()

	history := make([]WaterDay, 0, days)
	for rows.Next() {
		var day WaterDay
		if err := rows.Scan(&day.Date, &day.TotalMl); err != nil {
			return nil, fmt.Errorf("water history [rows scan]: %w", err)
		}
		history = append(history, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("water history [rows error]: %w", err)
	}

	return history, nil
}

// ReconcileCalories recomputes daily calorie counters from meal log entries for the dates
// on or after since. Only rows that drifted are written; their count is returned.
func (r *Repo) ReconcileCalories(ctx context.Context, since pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.calories.reconcile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("since", since.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	missing, err := tx.Exec(
		ctx,
		`
			INSERT INTO daily_logs (member_id, log_date, calories_consumed)
			SELECT member_id, log_date, SUM(total_calories)
			FROM meal_log_entries
			WHERE log_date >= $1
			GROUP BY member_id, log_date
			HAVING SUM(total_calories) > 0
			ON CONFLICT (member_id, log_date) DO NOTHING
		`,
		since,
	)
	if err != nil {
		return 0, fmt.Errorf("insert missing daily logs: %w", err)
	}

	// Meal writers hold the daily log row lock until commit. Taking the locks first
	// makes the recompute below start from a snapshot that includes their entries.
	if _, err := tx.Exec(
		ctx,
		`SELECT id FROM daily_logs WHERE log_date >= $1 ORDER BY id FOR UPDATE`,
		since,
	); err != nil {
		return 0, fmt.Errorf("lock daily logs: %w", err)
	}

	drifted, err := tx.Exec(
		ctx,
		`
			UPDATE daily_logs dl
			SET calories_consumed = s.total
			FROM (
				SELECT d.id, COALESCE(SUM(m.total_calories), 0)::int AS total
				FROM daily_logs d
				LEFT JOIN meal_log_entries m ON m.member_id = d.member_id AND m.log_date = d.log_date
				WHERE d.log_date >= $1
				GROUP BY d.id
			) s
			WHERE dl.id = s.id AND dl.calories_consumed <> s.total
		`,
		since,
	)
	if err != nil {
		return 0, fmt.Errorf("update drifted daily logs: %w", err)
	}

	return int(missing.RowsAffected() + drifted.RowsAffected()), nil
}
