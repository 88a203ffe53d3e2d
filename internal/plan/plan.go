package plan

import (
	"encoding/json"

	yaml "gopkg.in/yaml.v3"
)

// Exercise is one line item of a workout day. Rest is in seconds.
type Exercise struct {
	Exercise string `json:"exercise" yaml:"exercise"`
	Sets     int    `json:"sets" yaml:"sets"`
	Reps     int    `json:"reps" yaml:"reps"`
	Rest     int    `json:"rest" yaml:"rest"`
}

// WorkoutPlan maps a day name (e.g. "Monday") to its exercises.
type WorkoutPlan struct {
	Days map[string][]Exercise `json:"days" yaml:"days"`
}

// Meal is one line item of a diet day.
type Meal struct {
	Name     string   `json:"name" yaml:"name"`
	Foods    []string `json:"foods" yaml:"foods"`
	Calories int      `json:"calories" yaml:"calories"`
}

// DietPlan maps a day name to its meals.
type DietPlan struct {
	Days map[string][]Meal `json:"days" yaml:"days"`
}

// MarshalJSON writes nil days, day lists and food lists as empty
// collections so the output always matches the plan schema.
func (p WorkoutPlan) MarshalJSON() ([]byte, error) {
	type wire WorkoutPlan
	days := make(map[string][]Exercise, len(p.Days))
	for day, exs := range p.Days {
		if exs == nil {
			exs = []Exercise{}
		}
		days[day] = exs
	}
	return json.Marshal(wire{Days: days})
}

func (p DietPlan) MarshalJSON() ([]byte, error) {
	type wire DietPlan
	days := make(map[string][]Meal, len(p.Days))
	for day, meals := range p.Days {
		out := make([]Meal, len(meals))
		for i, m := range meals {
			if m.Foods == nil {
				m.Foods = []string{}
			}
			out[i] = m
		}
		days[day] = out
	}
	return json.Marshal(wire{Days: days})
}

// ToJSON marshals the plan to JSON bytes.
func (p WorkoutPlan) ToJSON() ([]byte, error) { return json.Marshal(p) }

// ToYAML marshals the plan to YAML bytes.
func (p WorkoutPlan) ToYAML() ([]byte, error) { return yaml.Marshal(p) }

// ToJSON marshals the plan to JSON bytes.
func (p DietPlan) ToJSON() ([]byte, error) { return json.Marshal(p) }

// ToYAML marshals the plan to YAML bytes.
func (p DietPlan) ToYAML() ([]byte, error) { return yaml.Marshal(p) }
