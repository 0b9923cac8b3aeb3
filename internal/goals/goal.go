package goals

import (
	"errors"
	"time"

	"github.com/2beens/fitconnect/pkg"
)

// Fallbacks callers apply when no goal is stored for a day.
const (
	DefaultWaterTargetMl = 2500
	DefaultCalorieTarget = 2000

	MaxSpanDays = 31
)

var ErrGoalNotFound = errors.New("daily goal not found")

type DailyGoal struct {
	ID              int       `json:"id"`
	TrainerID       int       `json:"trainerId"`
	MemberID        int       `json:"memberId"`
	Date            pkg.Date  `json:"date"`
	WorkoutDuration int       `json:"workoutDuration"`
	CalorieTarget   int       `json:"calorieTarget"`
	CalorieLimit    int       `json:"calorieLimit"`
	ProteinTarget   float64   `json:"proteinTarget"`
	CarbsTarget     float64   `json:"carbsTarget"`
	FatsTarget      float64   `json:"fatsTarget"`
	WaterIntakeMl   int       `json:"waterIntakeMl"`
	Instructions    string    `json:"instructions"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (g DailyGoal) Validate() error {
	if g.MemberID <= 0 {
		return pkg.Validationf("member id required")
	}
	if g.TrainerID <= 0 {
		return pkg.Validationf("trainer id required")
	}
	if g.Date.IsZero() {
		return pkg.Validationf("goal date required")
	}
	if g.WorkoutDuration < 0 || g.CalorieTarget < 0 || g.CalorieLimit < 0 || g.WaterIntakeMl < 0 {
		return pkg.Validationf("targets cannot be negative")
	}
	if g.ProteinTarget < 0 || g.CarbsTarget < 0 || g.FatsTarget < 0 {
		return pkg.Validationf("macro targets cannot be negative")
	}
	return nil
}

// Targets are the water and calorie targets in effect for a day.
type Targets struct {
	WaterMl  int  `json:"waterMl"`
	Calories int  `json:"calories"`
	Defaults bool `json:"defaults"`
}

// EffectiveTargets applies the documented fallbacks for a missing goal or unset fields.
func EffectiveTargets(goal *DailyGoal) Targets {
	if goal == nil {
		return Targets{WaterMl: DefaultWaterTargetMl, Calories: DefaultCalorieTarget, Defaults: true}
	}
	t := Targets{WaterMl: goal.WaterIntakeMl, Calories: goal.CalorieTarget}
	if t.WaterMl <= 0 {
		t.WaterMl = DefaultWaterTargetMl
		t.Defaults = true
	}
	if t.Calories <= 0 {
		t.Calories = DefaultCalorieTarget
		t.Defaults = true
	}
	return t
}
