package goals

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

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const goalColumns = `
	id, trainer_id, member_id, goal_date, workout_duration, calorie_target, calorie_limit,
	protein_target, carbs_target, fats_target, water_intake_ml, instructions, created_at, updated_at
`

func scanGoal(row pgx.Row) (DailyGoal, error) {
	var g DailyGoal
	err := row.Scan(
		&g.ID, &g.TrainerID, &g.MemberID, &g.Date, &g.WorkoutDuration, &g.CalorieTarget, &g.CalorieLimit,
		&g.ProteinTarget, &g.CarbsTarget, &g.FatsTarget, &g.WaterIntakeMl, &g.Instructions,
		&g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

func upsert(ctx context.Context, q querier, g DailyGoal) (DailyGoal, error) {
	row := q.QueryRow(
		ctx,
		`
			INSERT INTO daily_goals (
				trainer_id, member_id, goal_date, workout_duration, calorie_target, calorie_limit,
				protein_target, carbs_target, fats_target, water_intake_ml, instructions
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (member_id, goal_date) DO UPDATE SET
				trainer_id = EXCLUDED.trainer_id,
				workout_duration = EXCLUDED.workout_duration,
				calorie_target = EXCLUDED.calorie_target,
				calorie_limit = EXCLUDED.calorie_limit,
				protein_target = EXCLUDED.protein_target,
				carbs_target = EXCLUDED.carbs_target,
				fats_target = EXCLUDED.fats_target,
				water_intake_ml = EXCLUDED.water_intake_ml,
				instructions = EXCLUDED.instructions,
				updated_at = now()
			RETURNING `+goalColumns,
		g.TrainerID, g.MemberID, g.Date, g.WorkoutDuration, g.CalorieTarget, g.CalorieLimit,
		g.ProteinTarget, g.CarbsTarget, g.FatsTarget, g.WaterIntakeMl, g.Instructions,
	)
	return scanGoal(row)
}

// Upsert stores the goal for (member, date), replacing any existing one in place.
func (r *Repo) Upsert(ctx context.Context, goal DailyGoal) (_ DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", goal.MemberID))

	stored, err := upsert(ctx, r.db, goal)
	if err != nil {
		return DailyGoal{}, fmt.Errorf("upsert daily goal: %w", err)
	}

	return stored, nil
}

// UpsertSpan replicates base's targets over days consecutive dates starting at base.Date.
// All days commit or none do.
func (r *Repo) UpsertSpan(ctx context.Context, base DailyGoal, days int) (_ []DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.upsert_span")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", base.MemberID))
	span.SetAttributes(attribute.Int("days", days))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	stored := make([]DailyGoal, 0, days)
	for i := 0; i < days; i++ {
		g := base
		g.Date = base.Date.AddDays(i)
		s, err := upsert(ctx, tx, g)
		if err != nil {
			return nil, fmt.Errorf("upsert daily goal [%s]: %w", g.Date, err)
		}
		stored = append(stored, s)
	}

	return stored, nil
}

func (r *Repo) Get(ctx context.Context, memberID int, date pkg.Date) (_ DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	g, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM daily_goals WHERE member_id = $1 AND goal_date = $2`,
		memberID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DailyGoal{}, ErrGoalNotFound
		}
		return DailyGoal{}, fmt.Errorf("daily goal [query row]: %w", err)
	}

	return g, nil
}

// ListRange returns the member's goals with dates in [from, to], ascending.
func (r *Repo) ListRange(ctx context.Context, memberID int, from, to pkg.Date) (_ []DailyGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list_range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+goalColumns+`
			FROM daily_goals
			WHERE member_id = $1 AND goal_date BETWEEN $2 AND $3
			ORDER BY goal_date
		`,
		memberID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("daily goals [query]: %w", err)
	}
	defer rows.Close()

	goals := []DailyGoal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("daily goals [rows scan]: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily goals [rows error]: %w", err)
	}

	return goals, nil
}
