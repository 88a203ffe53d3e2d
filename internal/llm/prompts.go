package llm

import (
	"fmt"
	"strings"

	"github.com/aaronromeo/fitgen/internal/plan"
)

// BuildWorkoutPrompt renders the system and user prompts for a workout plan.
func BuildWorkoutPrompt(spec plan.WorkoutSpec) (system, user string) {
	user = fmt.Sprintf(WorkoutUser,
		spec.NumDaysAWeek, spec.FitnessGoal, spec.AvgWorkoutLength,
		spec.ExperienceLevel, spec.Intensity,
	)
	return strings.TrimSpace(SystemPrompt), user
}

// BuildDietPrompt renders the system and user prompts for a diet plan.
func BuildDietPrompt(spec plan.DietSpec) (system, user string) {
	allergies := "None"
	if len(spec.Allergies) > 0 {
		allergies = strings.Join(spec.Allergies, ", ")
	}
	user = fmt.Sprintf(DietUser,
		spec.CaloriesPerDay, spec.DietaryPreference, spec.MealsPerDay,
		allergies, spec.Goal,
	)
	return strings.TrimSpace(SystemPrompt), user
}
