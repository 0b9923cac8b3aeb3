package actuals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/internal/db"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const mealLogColumns = `
	id, member_id, log_date, log_time, meal_type, notes,
	total_calories, total_protein, total_carbs, total_fats, created_at
`

func scanMealLog(row pgx.Row) (MealLogEntry, error) {
	var e MealLogEntry
	err := row.Scan(
		&e.ID, &e.MemberID, &e.Date, &e.Time, &e.Slot, &e.Notes,
		&e.Totals.Calories, &e.Totals.Protein, &e.Totals.Carbs, &e.Totals.Fats, &e.CreatedAt,
	)
	return e, err
}

// LogMeal stores the entry with its already computed items and totals, and adds the
// entry's calories to the member's daily counter.
func (r *Repo) LogMeal(ctx context.Context, entry MealLogEntry) (_ MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.meal.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", entry.MemberID))
	span.SetAttributes(attribute.String("slot", string(entry.Slot)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return MealLogEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	stored, err := scanMealLog(tx.QueryRow(
		ctx,
		`
			INSERT INTO meal_log_entries (member_id, log_date, log_time, meal_type, notes, total_calories, total_protein, total_carbs, total_fats)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+mealLogColumns,
		entry.MemberID, entry.Date, entry.Time, string(entry.Slot), entry.Notes,
		entry.Totals.Calories, entry.Totals.Protein, entry.Totals.Carbs, entry.Totals.Fats,
	))
	if err != nil {
		return MealLogEntry{}, fmt.Errorf("insert meal log: %w", err)
	}

	stored.Items = make([]MealLogItem, 0, len(entry.Items))
	for i, item := range entry.Items {
		item.MealLogID = stored.ID
		err := tx.QueryRow(
			ctx,
			`INSERT INTO meal_log_items (meal_log_id, food_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
			item.MealLogID, item.FoodID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return MealLogEntry{}, pkg.Validationf("meal item %d: unknown food %d", i, item.FoodID)
			}
			if pkg.IsCheckViolationError(err) {
				return MealLogEntry{}, pkg.Validationf("meal item %d: quantity must be positive", i)
			}
			return MealLogEntry{}, fmt.Errorf("insert meal item %d: %w", i, err)
		}
		stored.Items = append(stored.Items, item)
	}

	if err := db.AddCaloriesConsumed(ctx, tx, entry.MemberID, entry.Date, stored.Totals.Calories); err != nil {
		return MealLogEntry{}, err
	}

	return stored, nil
}

func (r *Repo) GetMealLog(ctx context.Context, id int) (_ MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.meal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal_log.id", id))

	e, err := scanMealLog(r.db.QueryRow(ctx, `SELECT `+mealLogColumns+` FROM meal_log_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MealLogEntry{}, ErrMealLogNotFound
		}
		return MealLogEntry{}, fmt.Errorf("meal log [query row]: %w", err)
	}

	return e, nil
}

// DeleteMealLog removes the entry and its items, taking its calories back off the
// daily counter. The counter is clamped at zero.
func (r *Repo) DeleteMealLog(ctx context.Context, id int) (_ MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.meal.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal_log.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return MealLogEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	deleted, err := scanMealLog(tx.QueryRow(ctx, `DELETE FROM meal_log_entries WHERE id = $1 RETURNING `+mealLogColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MealLogEntry{}, ErrMealLogNotFound
		}
		return MealLogEntry{}, fmt.Errorf("delete meal log: %w", err)
	}

	if err := db.AddCaloriesConsumed(ctx, tx, deleted.MemberID, deleted.Date, -deleted.Totals.Calories); err != nil {
		return MealLogEntry{}, err
	}

	return deleted, nil
}

// GetMealsForDate returns the member's meal log entries for date with their items.
// Item nutrition is scaled from the current catalog values; entry totals stay as logged.
func (r *Repo) GetMealsForDate(ctx context.Context, memberID int, date pkg.Date) (_ []MealLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.actuals.meal.for_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.String("date", date.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealLogColumns+` FROM meal_log_entries WHERE member_id = $1 AND log_date = $2 ORDER BY log_time, id`,
		memberID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("meal logs [query]: %w", err)
	}
	defer rows.Close()

	entries := []MealLogEntry{}
	byID := map[int]int{}
	for rows.Next() {
		e, err := scanMealLog(rows)
		if err != nil {
			return nil, fmt.Errorf("meal logs [rows scan]: %w", err)
		}
		e.Items = []MealLogItem{}
		byID[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("meal logs [rows error]: %w", err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	itemRows, err := r.db.Query(
		ctx,
		`
			SELECT mli.id, mli.meal_log_id, mli.food_id, mli.quantity,
			       f.name, f.calories, f.protein, f.carbs, f.fats, f.serving_unit
			FROM meal_log_items mli
			JOIN meal_log_entries mle ON mle.id = mli.meal_log_id
			JOIN foods f ON f.id = mli.food_id
			WHERE mle.member_id = $1 AND mle.log_date = $2
			ORDER BY mli.id
		`,
		memberID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("meal log items [query]: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			item MealLogItem
			food catalog.Food
		)
		if err := itemRows.Scan(
			&item.ID, &item.MealLogID, &item.FoodID, &item.Quantity,
			&food.Name, &food.Calories, &food.Protein, &food.Carbs, &food.Fats, &food.ServingUnit,
		); err != nil {
			return nil, fmt.Errorf("meal log items [rows scan]: %w", err)
		}
		item.FoodName = food.Name
		item.Nutrition = food.Scaled(item.Quantity)

		idx, ok := byID[item.MealLogID]
		if !ok {
			continue
		}
		entries[idx].Items = append(entries[idx].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("meal log items [rows error]: %w", err)
	}

	return entries, nil
}
