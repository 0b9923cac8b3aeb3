package plans

import (
	"context"
	"fmt"
	"sort"

	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/internal/telemetry/tracing"
	"github.com/2beens/fitconnect/pkg"

	"go.opentelemetry.io/otel/attribute"
)

// AssignMealPlans upserts one meal plan header per slot for (member, date) and replaces
// each slot's items. All slots commit together.
func (r *Repo) AssignMealPlans(ctx context.Context, trainerID, memberID int, date pkg.Date, slots []MealPlan) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.meal.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))
	span.SetAttributes(attribute.Int("slots", len(slots)))

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

	stored := make([]MealPlan, 0, len(slots))
	for _, slot := range slots {
		mp := MealPlan{
			TrainerID:    trainerID,
			MemberID:     memberID,
			Date:         date,
			Slot:         slot.Slot,
			Instructions: slot.Instructions,
		}

		// the upsert holds the header row lock until commit, so the item swap below is not raced
		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO meal_plans (trainer_id, member_id, plan_date, meal_type, instructions)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (member_id, plan_date, meal_type) DO UPDATE SET
					trainer_id = EXCLUDED.trainer_id,
					instructions = EXCLUDED.instructions
				RETURNING id
			`,
			trainerID, memberID, date, string(slot.Slot), slot.Instructions,
		).Scan(&mp.ID)
		if err != nil {
			return nil, fmt.Errorf("upsert meal plan [%s]: %w", slot.Slot, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM meal_plan_items WHERE meal_plan_id = $1`, mp.ID); err != nil {
			return nil, fmt.Errorf("clear meal plan items [%s]: %w", slot.Slot, err)
		}

		mp.Items = make([]MealPlanItem, 0, len(slot.Items))
		for _, item := range slot.Items {
			item.MealPlanID = mp.ID
			err := tx.QueryRow(
				ctx,
				`INSERT INTO meal_plan_items (meal_plan_id, food_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
				mp.ID, item.FoodID, item.Quantity,
			).Scan(&item.ID)
			if err != nil {
				if pkg.IsForeignKeyViolationError(err) {
					return nil, pkg.Validationf("slot [%s]: unknown food %d", slot.Slot, item.FoodID)
				}
				if pkg.IsCheckViolationError(err) {
					return nil, pkg.Validationf("slot [%s]: quantity must be positive", slot.Slot)
				}
				return nil, fmt.Errorf("insert meal plan item [%s]: %w", slot.Slot, err)
			}
			mp.Items = append(mp.Items, item)
		}

		stored = append(stored, mp)
	}

	return stored, nil
}

// GetMealPlans returns the member's meal plans for date ordered by slot, with per-item
// nutrition scaled by quantity.
func (r *Repo) GetMealPlans(ctx context.Context, memberID int, date pkg.Date) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.meal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    mp.id, mp.trainer_id, mp.member_id, mp.plan_date, mp.meal_type, mp.instructions,
			    mpi.id, mpi.food_id, mpi.quantity,
			    f.name, f.calories, f.protein, f.carbs, f.fats, f.serving_unit
			FROM meal_plans mp
			LEFT JOIN meal_plan_items mpi ON mpi.meal_plan_id = mp.id
			LEFT JOIN foods f ON f.id = mpi.food_id
			WHERE mp.member_id = $1 AND mp.plan_date = $2
			ORDER BY mp.id, mpi.id
		`,
		memberID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("meal plans [query]: %w", err)
	}
	defer rows.Close()

	byID := map[int]*MealPlan{}
	var order []int
	for rows.Next() {
		var (
			mp       MealPlan
			itemID   *int
			foodID   *int
			quantity *float64
			name     *string
			calories *int
			protein  *float64
			carbs    *float64
			fats     *float64
			unit     *string
		)
		if err := rows.Scan(
			&mp.ID, &mp.TrainerID, &mp.MemberID, &mp.Date, &mp.Slot, &mp.Instructions,
			&itemID, &foodID, &quantity,
			&name, &calories, &protein, &carbs, &fats, &unit,
		); err != nil {
			return nil, fmt.Errorf("meal plans [rows scan]: %w", err)
		}

		existing, ok := byID[mp.ID]
		if !ok {
			mp.Items = []MealPlanItem{}
			existing = &mp
			byID[mp.ID] = existing
			order = append(order, mp.ID)
		}
		if itemID == nil {
			continue
		}

		food := catalog.Food{ID: *foodID, Name: *name, Calories: *calories, Protein: *protein, Carbs: *carbs, Fats: *fats, ServingUnit: *unit}
		item := MealPlanItem{
			ID:         *itemID,
			MealPlanID: mp.ID,
			FoodID:     *foodID,
			FoodName:   food.Name,
			Quantity:   *quantity,
			Nutrition:  food.Scaled(*quantity),
		}
		existing.Items = append(existing.Items, item)
		existing.Totals = existing.Totals.Add(item.Nutrition)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("meal plans [rows error]: %w", err)
	}

	mealPlans := make([]MealPlan, 0, len(order))
	for _, id := range order {
		mealPlans = append(mealPlans, *byID[id])
	}
	sort.SliceStable(mealPlans, func(i, j int) bool {
		return mealPlans[i].Slot.Order() < mealPlans[j].Slot.Order()
	})

	return mealPlans, nil
}
