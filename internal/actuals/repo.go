package actuals

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

const sessionColumns = `
	id, plan_id, member_id, trainer_id, session_date, duration_minutes, calories_burned, notes, created_at
`

func scanSession(row pgx.Row) (WorkoutSession, error) {
	var s WorkoutSession
	err := row.Scan(
		&s.ID, &s.PlanID, &s.MemberID, &s.TrainerID, &s.Date,
		&s.DurationMinutes, &s.CaloriesBurned, &s.Notes, &s.CreatedAt,
	)
	return s, err
}

func insertSession(ctx context.Context, tx pgx.Tx, session WorkoutSession) (WorkoutSession, error) {
	stored, err := scanSession(tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_sessions (plan_id, member_id, trainer_id, session_date, duration_minutes, calories_burned, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+sessionColumns,
		session.PlanID, session.MemberID, session.TrainerID, session.Date,
		session.DurationMinutes, session.CaloriesBurned, session.Notes,
	))
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return WorkoutSession{}, pkg.Validationf("unknown plan %v", session.PlanID)
		}
		return WorkoutSession{}, fmt.Errorf("insert workout session: %w", err)
	}
	stored.Logs = []SetLog{}
	return stored, nil
}

// insertSetLogs writes the logs for an existing session and flags the member's workout
// as completed for the session date.
func insertSetLogs(ctx context.Context, tx pgx.Tx, session WorkoutSession, logs []SetLog) ([]SetLog, error) {
	stored := make([]SetLog, 0, len(logs))
	for i, l := range logs {
		l.SessionID = session.ID
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO workout_logs (session_id, exercise_id, set_number, reps, weight, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`,
			l.SessionID, l.ExerciseID, l.SetNumber, l.Reps, l.Weight, l.Notes,
		).Scan(&l.ID)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return nil, pkg.Validationf("set log %d: unknown exercise %d", i, l.ExerciseID)
			}
			return nil, fmt.Errorf("insert set log %d: %w", i, err)
		}
		stored = append(stored, l)
	}

	if len(stored) > 0 {
		if err := db.MarkWorkoutCompleted(ctx, tx, session.MemberID, session.Date); err != nil {
			return nil, err
		}
	}

	return stored, nil
}

func (r *Repo) CreateSession(ctx context.Context, session WorkoutSession) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", session.MemberID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return WorkoutSession{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	return insertSession(ctx, tx, session)
}

// AppendSetLogs adds logs to an existing session. The session row is locked for the
// duration of the transaction.
func (r *Repo) AppendSetLogs(ctx context.Context, sessionID int, logs []SetLog) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.append_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("logs", len(logs)))

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

	session, err := scanSession(tx.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions WHERE id = $1 FOR UPDATE`,
		sessionID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("workout session [query row]: %w", err)
	}

	return insertSetLogs(ctx, tx, session, logs)
}

// RecordWorkout stores a session together with its logs.
func (r *Repo) RecordWorkout(ctx context.Context, session WorkoutSession, logs []SetLog) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", session.MemberID))
	span.SetAttributes(attribute.Int("logs", len(logs)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return WorkoutSession{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	stored, err := insertSession(ctx, tx, session)
	if err != nil {
		return WorkoutSession{}, err
	}
	stored.Logs, err = insertSetLogs(ctx, tx, stored, logs)
	if err != nil {
		return WorkoutSession{}, err
	}

	return stored, nil
}

func (r *Repo) GetSession(ctx context.Context, id int) (_ WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	s, err := scanSession(r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM workout_sessions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WorkoutSession{}, ErrSessionNotFound
		}
		return WorkoutSession{}, fmt.Errorf("workout session [query row]: %w", err)
	}

	return s, nil
}

// GetSessionsForDate returns the member's sessions for date in creation order, each with its logs.
func (r *Repo) GetSessionsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.String("date", date.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions WHERE member_id = $1 AND session_date = $2 ORDER BY id`,
		memberID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sessions [query]: %w", err)
	}
	defer rows.Close()

	sessions := []WorkoutSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("workout sessions [rows scan]: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sessions [rows error]: %w", err)
	}

	for i := range sessions {
		sessions[i].Logs, err = r.GetSessionLogs(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

// GetSessionLogs returns the session's logs ordered by exercise and set number.
func (r *Repo) GetSessionLogs(ctx context.Context, sessionID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.session.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT wl.id, wl.session_id, wl.exercise_id, e.name, wl.set_number, wl.reps, wl.weight, wl.notes
			FROM workout_logs wl
			JOIN exercises e ON e.id = wl.exercise_id
			WHERE wl.session_id = $1
			ORDER BY wl.exercise_id, wl.set_number, wl.id
		`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("set logs [query]: %w", err)
	}
	defer rows.Close()

	logs := []SetLog{}
	for rows.Next() {
		var l SetLog
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ExerciseID, &l.ExerciseName, &l.SetNumber, &l.Reps, &l.Weight, &l.Notes); err != nil {
			return nil, fmt.Errorf("set logs [rows scan]: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("set logs [rows error]: %w", err)
	}

	return logs, nil
}
