package db

import (
	"context"
	"fmt"

	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// MarkWorkoutCompleted flags the member's daily log for date, creating the row if needed.
func MarkWorkoutCompleted(ctx context.Context, q Execer, memberID int, date pkg.Date) error {
	_, err := q.Exec(
		ctx,
		`
			INSERT INTO daily_logs (member_id, log_date, workout_completed)
			VALUES ($1, $2, TRUE)
			ON CONFLICT (member_id, log_date) DO UPDATE SET workout_completed = TRUE
		`,
		memberID, date,
	)
	if err != nil {
		return fmt.Errorf("mark workout completed: %w", err)
	}
	return nil
}

// AddCaloriesConsumed moves the member's calorie counter for date by delta.
// The counter never drops below zero.
func AddCaloriesConsumed(ctx context.Context, q Execer, memberID int, date pkg.Date, delta int) error {
	_, err := q.Exec(
		ctx,
		`
			INSERT INTO daily_logs (member_id, log_date, calories_consumed)
			VALUES ($1, $2, GREATEST(0, $3::int))
			ON CONFLICT (member_id, log_date) DO UPDATE
				SET calories_consumed = GREATEST(0, daily_logs.calories_consumed + $3::int)
		`,
		memberID, date, delta,
	)
	if err != nil {
		return fmt.Errorf("add calories consumed: %w", err)
	}
	return nil
}
