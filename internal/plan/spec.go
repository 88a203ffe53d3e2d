package plan

import (
	"strings"
)

// WorkoutSpec describes the workout plan a caller wants generated.
// JSON tags follow the public request schema (snake_case).
type WorkoutSpec struct {
	NumDaysAWeek     int    `json:"num_days_a_week"`
	FitnessGoal      string `json:"fitness_goal"`
	AvgWorkoutLength int    `json:"avg_workout_length"` // minutes
	ExperienceLevel  string `json:"experience_level"`
	Intensity        string `json:"intensity"`
}

// DietSpec describes the diet plan a caller wants generated.
type DietSpec struct {
	CaloriesPerDay    int      `json:"calories_per_day"`
	DietaryPreference string   `json:"dietary_preference"`
	MealsPerDay       int      `json:"meals_per_day"`
	Allergies         []string `json:"allergies"`
	Goal              string   `json:"goal"`
}

// Validate reports every field that breaks the specification constraints.
func (s WorkoutSpec) Validate() error {
	var v validator
	v.positive("num_days_a_week", s.NumDaysAWeek)
	v.nonBlank("fitness_goal", s.FitnessGoal)
	v.positive("avg_workout_length", s.AvgWorkoutLength)
	v.nonBlank("experience_level", s.ExperienceLevel)
	v.nonBlank("intensity", s.Intensity)
	return v.err()
}

// Validate reports every field that breaks the specification constraints.
func (s DietSpec) Validate() error {
	var v validator
	v.positive("calories_per_day", s.CaloriesPerDay)
	v.nonBlank("dietary_preference", s.DietaryPreference)
	v.positive("meals_per_day", s.MealsPerDay)
	for i, a := range s.Allergies {
		v.nonBlank(fieldIndex("allergies", i), a)
	}
	v.nonBlank("goal", s.Goal)
	return v.err()
}

type validator struct {
	fields []FieldError
}

func (v *validator) positive(field string, n int) {
	if n <= 0 {
		v.fields = append(v.fields, FieldError{Field: field, Reason: "must be greater than 0"})
	}
}

func (v *validator) nonBlank(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.fields = append(v.fields, FieldError{Field: field, Reason: "must not be empty"})
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
