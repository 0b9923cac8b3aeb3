package plans

import (
	"errors"
	"time"

	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/pkg"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrPlanNotActive   = errors.New("plan is not active")
	ErrOverlappingPlan = errors.New("overlapping active plan exists")
)

// CompletedViaPlanNotes marks sessions created by completing a plan.
const CompletedViaPlanNotes = "Completed via plan view"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

type WorkoutPlan struct {
	ID           int            `json:"id"`
	TrainerID    int            `json:"trainerId"`
	MemberID     int            `json:"memberId"`
	Name         string         `json:"name"`
	FocusArea    string         `json:"focusArea"`
	Instructions string         `json:"instructions"`
	StartDate    pkg.Date       `json:"startDate"`
	EndDate      pkg.Date       `json:"endDate"`
	Status       Status         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Exercises    []PlanExercise `json:"exercises,omitempty"`
}

// covers reports whether date falls within the plan's inclusive range.
func (p WorkoutPlan) covers(date pkg.Date) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

func (p WorkoutPlan) Validate() error {
	if p.TrainerID <= 0 || p.MemberID <= 0 {
		return pkg.Validationf("trainer and member ids required")
	}
	if p.Name == "" {
		return pkg.Validationf("plan name required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return pkg.Validationf("plan date range required")
	}
	if p.EndDate.Before(p.StartDate) {
		return pkg.Validationf("plan end date %s before start date %s", p.EndDate, p.StartDate)
	}
	for i, e := range p.Exercises {
		if err := e.Validate(); err != nil {
			return pkg.Validationf("exercise line %d: %s", i, err)
		}
	}
	return nil
}

type PlanExercise struct {
	ID          int     `json:"id"`
	PlanID      int     `json:"planId"`
	ExerciseID  int     `json:"exerciseId"`
	Name        string  `json:"name,omitempty"`
	MuscleGroup string  `json:"muscleGroup,omitempty"`
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	Weight      float64 `json:"weight"`
	RestSeconds int     `json:"restSeconds"`
	Notes       string  `json:"notes"`
	OrderIndex  int     `json:"orderIndex"`
}

func (e PlanExercise) Validate() error {
	if e.ExerciseID <= 0 {
		return pkg.Validationf("exercise id required")
	}
	if e.Sets <= 0 {
		return pkg.Validationf("sets must be positive")
	}
	if e.Reps == "" {
		return pkg.Validationf("reps required")
	}
	if e.Weight < 0 || e.RestSeconds < 0 {
		return pkg.Validationf("weight and rest cannot be negative")
	}
	return nil
}

type MealPlan struct {
	ID           int               `json:"id"`
	TrainerID    int               `json:"trainerId"`
	MemberID     int               `json:"memberId"`
	Date         pkg.Date          `json:"date"`
	Slot         catalog.MealSlot  `json:"slot"`
	Instructions string            `json:"instructions"`
	Items        []MealPlanItem    `json:"items"`
	Totals       catalog.Nutrition `json:"totals"`
}

type MealPlanItem struct {
	ID         int               `json:"id"`
	MealPlanID int               `json:"mealPlanId"`
	FoodID     int               `json:"foodId"`
	FoodName   string            `json:"foodName,omitempty"`
	Quantity   float64           `json:"quantity"`
	Nutrition  catalog.Nutrition `json:"nutrition"`
}

func validateSlots(slots []MealPlan) error {
	seen := map[catalog.MealSlot]bool{}
	for _, s := range slots {
		if !s.Slot.Valid() {
			return pkg.Validationf("invalid meal slot [%s]", s.Slot)
		}
		if seen[s.Slot] {
			return pkg.Validationf("meal slot [%s] given twice", s.Slot)
		}
		seen[s.Slot] = true
		for _, item := range s.Items {
			if item.FoodID <= 0 {
				return pkg.Validationf("food id required in slot [%s]", s.Slot)
			}
			if item.Quantity <= 0 {
				return pkg.Validationf("quantity must be positive in slot [%s], got %v", s.Slot, item.Quantity)
			}
		}
	}
	return nil
}
