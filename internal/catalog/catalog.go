package catalog

import (
	"errors"
	"math"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrFoodNotFound     = errors.New("food not found")
)

type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
	DefaultSets int    `json:"defaultSets"`
	DefaultReps string `json:"defaultReps"`
}

// Food values are per one base serving (ServingUnit).
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	ServingUnit string  `json:"servingUnit"`
}

type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Scaled returns the nutrition of qty base servings.
func (f Food) Scaled(qty float64) Nutrition {
	return Nutrition{
		Calories: int(math.Round(float64(f.Calories) * qty)),
		Protein:  f.Protein * qty,
		Carbs:    f.Carbs * qty,
		Fats:     f.Fats * qty,
	}
}

func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fats:     n.Fats + other.Fats,
	}
}
