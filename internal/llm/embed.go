package llm

import _ "embed"

// Embeds for prompts and schemas used by the llm package.

//go:embed prompts/system.txt
var SystemPrompt string

//go:embed prompts/workout-user.txt
var WorkoutUser string

//go:embed prompts/diet-user.txt
var DietUser string

//go:embed schemas/workout-plan-v1.json
var WorkoutPlanSchema string

//go:embed schemas/diet-plan-v1.json
var DietPlanSchema string
