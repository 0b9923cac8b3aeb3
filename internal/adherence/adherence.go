package adherence

import (
	"time"

	"github.com/2beens/fitconnect/internal/goals"
	"github.com/2beens/fitconnect/pkg"
)

const (
	// ComplianceWaterFallbackMl is the bar a day's water total must reach when no goal is stored for it.
	ComplianceWaterFallbackMl = 2000

	ReportStatusSent = "SENT"

	recentWindowDays = 7
)

// ClientProgress aggregates a member's actuals over an inclusive date range.
type ClientProgress struct {
	MemberID  int      `json:"memberId"`
	From      pkg.Date `json:"from"`
	To        pkg.Date `json:"to"`
	TotalDays int      `json:"totalDays"`

	WorkoutCount         int `json:"workoutCount"`
	TotalDurationMinutes int `json:"totalDurationMinutes"`
	TotalCaloriesBurned  int `json:"totalCaloriesBurned"`
	AttendanceDays       int `json:"attendanceDays"`

	CompletedWorkoutDays int     `json:"completedWorkoutDays"`
	CompletionRate       float64 `json:"completionRate"`

	MealsLoggedDays int `json:"mealsLoggedDays"`

	WaterComplianceDays int     `json:"waterComplianceDays"`
	WaterComplianceRate float64 `json:"waterComplianceRate"`

	WeightChange        float64 `json:"weightChange"`
	WeightChangeDefined bool    `json:"weightChangeDefined"`
}

type SessionTotals struct {
	Count           int
	DurationMinutes int
	CaloriesBurned  int
	AttendanceDays  int
}

// WeightSpan holds the first and last weight samples of a range.
type WeightSpan struct {
	Samples int
	First   float64
	Last    float64
}

func (w WeightSpan) Change() (float64, bool) {
	if w.Samples < 2 {
		return 0, false
	}
	return pkg.Round2(w.Last - w.First), true
}

// ProgressReport is a frozen snapshot of ClientProgress with trainer feedback.
// Saved reports are never recomputed.
type ProgressReport struct {
	ID             int       `json:"id"`
	TrainerID      int       `json:"trainerId"`
	MemberID       int       `json:"memberId"`
	StartDate      pkg.Date  `json:"startDate"`
	EndDate        pkg.Date  `json:"endDate"`
	GeneratedAt    time.Time `json:"generatedAt"`
	CompletionRate float64   `json:"completionRate"`
	MealsLogged    int       `json:"mealsLogged"`
	WaterRate      float64   `json:"waterRate"`
	WeightChange   float64   `json:"weightChange"`
	Feedback       string    `json:"feedback"`
	Status         string    `json:"status"`
}

func (r ProgressReport) Validate() error {
	if r.TrainerID <= 0 {
		return pkg.Validationf("trainer id required")
	}
	if r.MemberID <= 0 {
		return pkg.Validationf("member id required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return pkg.Validationf("report start and end dates required")
	}
	if r.EndDate.Before(r.StartDate) {
		return pkg.Validationf("report end date %s before start date %s", r.EndDate, r.StartDate)
	}
	return nil
}

type Dashboard struct {
	MemberID int              `json:"memberId"`
	Date     pkg.Date         `json:"date"`
	Goal     *goals.DailyGoal `json:"goal"`
	Targets  goals.Targets    `json:"targets"`

	PlanID   *int   `json:"planId"`
	PlanName string `json:"planName"`

	MealPlanSlots    int      `json:"mealPlanSlots"`
	WaterTotalMl     int      `json:"waterTotalMl"`
	CaloriesConsumed int      `json:"caloriesConsumed"`
	LatestWeight     *float64 `json:"latestWeight"`

	CompletedWorkoutDays int `json:"completedWorkoutDays"`
	CompletedLast7Days   int `json:"completedLast7Days"`
}

func emptyDashboard(memberID int, date pkg.Date) Dashboard {
	return Dashboard{
		MemberID: memberID,
		Date:     date,
		Targets:  goals.EffectiveTargets(nil),
	}
}

type TrainerStats struct {
	TrainerID      int      `json:"trainerId"`
	Date           pkg.Date `json:"date"`
	PlansCompleted int      `json:"plansCompleted"`
	ActivePlans    int      `json:"activePlans"`
	ClientsCount   int      `json:"clientsCount"`
}

// CompletionRate is completed/total as a percentage, 0 for an empty range.
func CompletionRate(completedDays, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	return pkg.Round2(float64(completedDays) / float64(totalDays) * 100)
}

// waterTarget is the compliance bar for a day; a stored goal without a water target falls back too.
func waterTarget(goal *goals.DailyGoal) int {
	if goal == nil || goal.WaterIntakeMl <= 0 {
		return ComplianceWaterFallbackMl
	}
	return goal.WaterIntakeMl
}

// waterComplianceDays counts the days in [from, to] whose water total met the day's target.
// Both maps are keyed by pkg.Date.String().
func waterComplianceDays(from, to pkg.Date, totals map[string]int, goalsByDay map[string]goals.DailyGoal) int {
	compliant := 0
	for d := from; !d.After(to); d = d.AddDays(1) {
		key := d.String()
		var goal *goals.DailyGoal
		if g, ok := goalsByDay[key]; ok {
			goal = &g
		}
		if totals[key] >= waterTarget(goal) {
			compliant++
		}
	}
	return compliant
}
