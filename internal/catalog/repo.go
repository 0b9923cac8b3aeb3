package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const foodSearchLimit = 50

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListExercises(ctx context.Context, muscleGroup string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if muscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", muscleGroup))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, muscle_group, equipment, difficulty, description, default_sets, default_reps
			FROM exercises
			WHERE ($1::text = '' OR lower(muscle_group) = lower($1))
			ORDER BY muscle_group, name
		`,
		muscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Difficulty, &e.Description,
			&e.DefaultSets, &e.DefaultReps,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, muscle_group, equipment, difficulty, description, default_sets, default_reps
			FROM exercises
			WHERE id = $1
		`,
		id,
	).Scan(
		&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Difficulty, &e.Description,
		&e.DefaultSets, &e.DefaultReps,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("exercise [query row]: %w", err)
	}

	return e, nil
}

// SearchFoods does a case-insensitive substring match on the food name.
// An empty query lists the first foods by name.
func (r *Repo) SearchFoods(ctx context.Context, query string) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.foods.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("params.query", query))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, calories, protein, carbs, fats, serving_unit
			FROM foods
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY name
			LIMIT $2
		`,
		query,
		foodSearchLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("foods [query]: %w", err)
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		var f Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fats, &f.ServingUnit); err != nil {
			return nil, fmt.Errorf("foods [rows scan]: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("foods [rows error]: %w", err)
	}

	return foods, nil
}

func (r *Repo) GetFood(ctx context.Context, id int) (_ Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("food.id", id))

	var f Food
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, calories, protein, carbs, fats, serving_unit
			FROM foods
			WHERE id = $1
		`,
		id,
	).Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fats, &f.ServingUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Food{}, ErrFoodNotFound
		}
		return Food{}, fmt.Errorf("food [query row]: %w", err)
	}

	return f, nil
}
