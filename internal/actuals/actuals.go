package actuals

import (
	"errors"
	"time"

	"github.com/2beens/fitconnect/internal/catalog"
	"github.com/2beens/fitconnect/pkg"
)

var (
	ErrSessionNotFound    = errors.New("workout session not found")
	ErrMealLogNotFound    = errors.New("meal log not found")
	ErrWaterEventNotFound = errors.New("water event not found")
)

const (
	DefaultWaterHistoryDays = 7
	MaxWaterHistoryDays     = 90
)

type WorkoutSession struct {
	ID              int       `json:"id"`
	PlanID          *int      `json:"planId"`
	MemberID        int       `json:"memberId"`
	TrainerID       *int      `json:"trainerId"`
	Date            pkg.Date  `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	Logs            []SetLog  `json:"logs"`
}

func (s WorkoutSession) Validate() error {
	if s.MemberID <= 0 {
		return pkg.Validationf("member id required")
	}
	if s.Date.IsZero() {
		return pkg.Validationf("session date required")
	}
	if s.DurationMinutes < 0 || s.CaloriesBurned < 0 {
		return pkg.Validationf("duration and calories cannot be negative")
	}
	return nil
}

// SetLog is one performed set of an exercise within a session.
type SetLog struct {
	ID           int     `json:"id"`
	SessionID    int     `json:"sessionId"`
	ExerciseID   int     `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName,omitempty"`
	SetNumber    int     `json:"setNumber"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	Notes        string  `json:"notes"`
}

func (l SetLog) Validate() error {
	if l.ExerciseID <= 0 {
		return pkg.Validationf("exercise id required")
	}
	if l.SetNumber <= 0 {
		return pkg.Validationf("set number must be positive")
	}
	if l.Reps < 0 || l.Weight < 0 {
		return pkg.Validationf("reps and weight cannot be negative")
	}
	return nil
}

func validateSetLogs(logs []SetLog) error {
	for i, l := range logs {
		if err := l.Validate(); err != nil {
			return pkg.Validationf("set log %d: %s", i, err)
		}
	}
	return nil
}

// MealLogEntry carries nutrition totals computed when the meal was logged.
// Later catalog changes do not alter them.
type MealLogEntry struct {
	ID        int               `json:"id"`
	MemberID  int               `json:"memberId"`
	Date      pkg.Date          `json:"date"`
	Time      string            `json:"time"`
	Slot      catalog.MealSlot  `json:"slot"`
	Notes     string            `json:"notes"`
	Totals    catalog.Nutrition `json:"totals"`
	Items     []MealLogItem     `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
}

type MealLogItem struct {
	ID        int               `json:"id"`
	MealLogID int               `json:"mealLogId"`
	FoodID    int               `json:"foodId"`
	FoodName  string            `json:"foodName,omitempty"`
	Quantity  float64           `json:"quantity"`
	Nutrition catalog.Nutrition `json:"nutrition"`
}

type WeightSample struct {
	ID        int       `json:"id"`
	MemberID  int       `json:"memberId"`
	Date      pkg.Date  `json:"date"`
	Weight    float64   `json:"weight"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type WaterEvent struct {
	ID       int       `json:"id"`
	MemberID int       `json:"memberId"`
	Date     pkg.Date  `json:"date"`
	LoggedAt time.Time `json:"loggedAt"`
	AmountMl int       `json:"amountMl"`
}

// WaterDay is the live water total of one day.
type WaterDay struct {
	Date    pkg.Date `json:"date"`
	TotalMl int      `json:"totalMl"`
}
