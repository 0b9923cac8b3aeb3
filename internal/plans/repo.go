package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/db"
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

const planColumns = `
	id, trainer_id, member_id, name, focus_area, instructions, start_date, end_date, status, created_at, updated_at
`

func scanPlan(row pgx.Row) (WorkoutPlan, error) {
	var p WorkoutPlan
	err := row.Scan(
		&p.ID, &p.TrainerID, &p.MemberID, &p.Name, &p.FocusArea, &p.Instructions,
		&p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateWorkoutPlan stores the plan header and its exercise lines in one transaction.
// Lines get order_index equal to their position in plan.Exercises.
func (r *Repo) CreateWorkoutPlan(ctx context.Context, plan WorkoutPlan, rejectOverlapping bool) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", plan.MemberID))
	span.SetAttributes(attribute.Int("exercises", len(plan.Exercises)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return WorkoutPlan{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	if rejectOverlapping {
		// serializes plan creation per member until the tx ends
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1::bigint)`, plan.MemberID); err != nil {
			return WorkoutPlan{}, fmt.Errorf("lock member plans: %w", err)
		}
		var overlaps bool
		err := tx.QueryRow(
			ctx,
			`
				SELECT EXISTS (
					SELECT 1 FROM workout_plans
					WHERE member_id = $1 AND status = 'ACTIVE' AND start_date <= $3 AND end_date >= $2
				)
			`,
			plan.MemberID, plan.StartDate, plan.EndDate,
		).Scan(&overlaps)
		if err != nil {
			return WorkoutPlan{}, fmt.Errorf("check overlapping plans: %w", err)
		}
		if overlaps {
			return WorkoutPlan{}, ErrOverlappingPlan
		}
	}

	stored, err := scanPlan(tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_plans (trainer_id, member_id, name, focus_area, instructions, start_date, end_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'ACTIVE')
			RETURNING `+planColumns,
		plan.TrainerID, plan.MemberID, plan.Name, plan.FocusArea, plan.Instructions, plan.StartDate, plan.EndDate,
	))
	if err != nil {
		return WorkoutPlan{}, fmt.Errorf("insert workout plan: %w", err)
	}

	stored.Exercises = make([]PlanExercise, 0, len(plan.Exercises))
	for i, e := range plan.Exercises {
		e.PlanID = stored.ID
		e.OrderIndex = i
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO plan_exercises (plan_id, exercise_id, sets, reps, weight, rest_seconds, notes, order_index)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id
			`,
			e.PlanID, e.ExerciseID, e.Sets, e.Reps, e.Weight, e.RestSeconds, e.Notes, e.OrderIndex,
		).Scan(&e.ID)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return WorkoutPlan{}, pkg.Validationf("exercise line %d: unknown exercise %d", i, e.ExerciseID)
			}
			return WorkoutPlan{}, fmt.Errorf("insert plan exercise %d: %w", i, err)
		}
		stored.Exercises = append(stored.Exercises, e)
	}

	return stored, nil
}

func (r *Repo) GetPlan(ctx context.Context, id int) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", id))

	p, err := scanPlan(r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM workout_plans WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WorkoutPlan{}, ErrPlanNotFound
		}
		return WorkoutPlan{}, fmt.Errorf("workout plan [query row]: %w", err)
	}

	return p, nil
}

func (r *Repo) ListPlansForMember(ctx context.Context, memberID int) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE member_id = $1 ORDER BY created_at DESC, id DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout plans [query]: %w", err)
	}
	defer rows.Close()

	plans := []WorkoutPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("workout plans [rows scan]: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout plans [rows error]: %w", err)
	}

	return plans, nil
}

// GetPlanForDate returns the ACTIVE plan covering date. The most recently created one
// wins when several do.
func (r *Repo) GetPlanForDate(ctx context.Context, memberID int, date pkg.Date) (_ WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.String("date", date.String()))

	p, err := scanPlan(r.db.QueryRow(
		ctx,
		`
			SELECT `+planColumns+`
			FROM workout_plans
			WHERE member_id = $1 AND status = 'ACTIVE' AND start_date <= $2 AND end_date >= $2
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		`,
		memberID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WorkoutPlan{}, ErrPlanNotFound
		}
		return WorkoutPlan{}, fmt.Errorf("plan for date [query row]: %w", err)
	}

	return p, nil
}

func (r *Repo) GetPlanExercises(ctx context.Context, planID int) (_ []PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    pe.id, pe.plan_id, pe.exercise_id, e.name, e.muscle_group,
			    pe.sets, pe.reps, pe.weight, pe.rest_seconds, pe.notes, pe.order_index
			FROM plan_exercises pe
			JOIN exercises e ON e.id = pe.exercise_id
			WHERE pe.plan_id = $1
			ORDER BY pe.order_index
		`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("plan exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := []PlanExercise{}
	for rows.Next() {
		var e PlanExercise
		if err := rows.Scan(
			&e.ID, &e.PlanID, &e.ExerciseID, &e.Name, &e.MuscleGroup,
			&e.Sets, &e.Reps, &e.Weight, &e.RestSeconds, &e.Notes, &e.OrderIndex,
		); err != nil {
			return nil, fmt.Errorf("plan exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) UpdatePlanStatus(ctx context.Context, planID int, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.update_status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plans SET status = $2, updated_at = clock_timestamp() WHERE id = $1`,
		planID, string(status),
	)
	if err != nil {
		return fmt.Errorf("update plan status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// MarkComplete completes an ACTIVE plan, records a session for it on date and flags
// the day's workout as done. All three writes share one transaction.
func (r *Repo) MarkComplete(ctx context.Context, planID int, date pkg.Date) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workout.mark_complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

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

	var memberID, trainerID int
	err = tx.QueryRow(
		ctx,
		`
			UPDATE workout_plans SET status = 'COMPLETED', updated_at = clock_timestamp()
			WHERE id = $1 AND status = 'ACTIVE'
			RETURNING member_id, trainer_id
		`,
		planID,
	).Scan(&memberID, &trainerID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("complete plan: %w", err)
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM workout_plans WHERE id = $1)`, planID).Scan(&exists); err != nil {
			return 0, fmt.Errorf("check plan exists: %w", err)
		}
		if !exists {
			return 0, ErrPlanNotFound
		}
		return 0, ErrPlanNotActive
	}

	var sessionID int
	err = tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_sessions (plan_id, member_id, trainer_id, session_date, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
		planID, memberID, trainerID, date, CompletedViaPlanNotes,
	).Scan(&sessionID)
	if err != nil {
		return 0, fmt.Errorf("insert plan session: %w", err)
	}

	if err := db.MarkWorkoutCompleted(ctx, tx, memberID, date); err != nil {
		return 0, err
	}

	return sessionID, nil
}
