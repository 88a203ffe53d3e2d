package plan

import (
	"errors"
	"strings"
	"testing"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func hasField(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestDecodeWorkoutRequest_Valid(t *testing.T) {
	body := `{"plan_specifications":{"num_days_a_week":3,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`
	got, err := DecodeWorkoutRequest([]byte(body))
	if err != nil {
		t.Fatalf("DecodeWorkoutRequest: %v", err)
	}
	want := WorkoutSpec{NumDaysAWeek: 3, FitnessGoal: "strength", AvgWorkoutLength: 45, ExperienceLevel: "beginner", Intensity: "medium"}
	if got != want {
		t.Fatalf("spec = %+v, want %+v", got, want)
	}
}

func TestDecodeWorkoutRequest_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"empty body", ``, "(body)"},
		{"malformed json", `{"plan_specifications":`, "(body)"},
		{"missing wrapper", `{"num_days_a_week":3}`, "plan_specifications"},
		{"missing field", `{"plan_specifications":{"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week"},
		{"zero days", `{"plan_specifications":{"num_days_a_week":0,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week"},
		{"negative length", `{"plan_specifications":{"num_days_a_week":3,"fitness_goal":"strength","avg_workout_length":-5,"experience_level":"beginner","intensity":"medium"}}`, "avg_workout_length"},
		{"string number", `{"plan_specifications":{"num_days_a_week":"3","fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week"},
		{"fractional number", `{"plan_specifications":{"num_days_a_week":2.5,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week"},
		{"blank goal", `{"plan_specifications":{"num_days_a_week":3,"fitness_goal":"  ","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "fitness_goal"},
		{"integral float", `{"plan_specifications":{"num_days_a_week":3.0,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeWorkoutRequest([]byte(tc.body))
			names := fieldNames(t, err)
			if !hasField(names, tc.field) {
				t.Fatalf("fields = %v, want %q", names, tc.field)
			}
		})
	}
}

func TestDecodeWorkoutRequest_Reasons(t *testing.T) {
	valid := `{"plan_specifications":{"num_days_a_week":3,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`
	cases := []struct {
		name   string
		body   string
		field  string
		reason string
	}{
		{"trailing data", valid + ` trailing`, "(body)", "invalid json"},
		{"second object", valid + valid, "(body)", "invalid json"},
		{"integral float", `{"plan_specifications":{"num_days_a_week":3.0,"fitness_goal":"strength","avg_workout_length":45,"experience_level":"beginner","intensity":"medium"}}`, "num_days_a_week", "must be an integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeWorkoutRequest([]byte(tc.body))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Field != tc.field || verr.Fields[0].Reason != tc.reason {
				t.Fatalf("fields = %+v, want %s: %s", verr.Fields, tc.field, tc.reason)
			}
		})
	}
}

func TestDecodeDietRequest(t *testing.T) {
	body := `{"plan_specifications":{"calories_per_day":2200,"dietary_preference":"vegetarian","meals_per_day":3,"allergies":["peanuts","shellfish"],"goal":"maintenance"}}`
	got, err := DecodeDietRequest([]byte(body))
	if err != nil {
		t.Fatalf("DecodeDietRequest: %v", err)
	}
	if got.CaloriesPerDay != 2200 || got.MealsPerDay != 3 || got.Goal != "maintenance" {
		t.Fatalf("unexpected spec: %+v", got)
	}
	if len(got.Allergies) != 2 || got.Allergies[0] != "peanuts" || got.Allergies[1] != "shellfish" {
		t.Fatalf("allergies order not preserved: %v", got.Allergies)
	}

	noAllergies := `{"plan_specifications":{"calories_per_day":1800,"dietary_preference":"keto","meals_per_day":2,"goal":"weight loss"}}`
	got, err = DecodeDietRequest([]byte(noAllergies))
	if err != nil {
		t.Fatalf("allergies should be optional: %v", err)
	}
	if len(got.Allergies) != 0 {
		t.Fatalf("expected no allergies, got %v", got.Allergies)
	}

	bad := `{"plan_specifications":{"calories_per_day":0,"dietary_preference":"","meals_per_day":-1,"allergies":[""],"goal":"x"}}`
	names := fieldNames(t, func() error { _, err := DecodeDietRequest([]byte(bad)); return err }())
	for _, want := range []string{"calories_per_day", "dietary_preference", "meals_per_day", "allergies.0"} {
		if !hasField(names, want) {
			t.Errorf("fields = %v, missing %q", names, want)
		}
	}
}

func TestSpecValidate_ReportsAllFields(t *testing.T) {
	names := fieldNames(t, WorkoutSpec{}.Validate())
	for _, want := range []string{"num_days_a_week", "fitness_goal", "avg_workout_length", "experience_level", "intensity"} {
		if !hasField(names, want) {
			t.Errorf("fields = %v, missing %q", names, want)
		}
	}
	if err := (DietSpec{CaloriesPerDay: 2000, DietaryPreference: "omnivore", MealsPerDay: 3, Goal: "bulk"}).Validate(); err != nil {
		t.Fatalf("valid diet spec rejected: %v", err)
	}
	if msg := (WorkoutSpec{}).Validate().Error(); !strings.HasPrefix(msg, "invalid plan specifications:") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCheckCalories(t *testing.T) {
	p := DietPlan{Days: map[string][]Meal{
		"Monday":  {{Name: "Breakfast", Foods: []string{"oats"}, Calories: 900}, {Name: "Dinner", Foods: []string{"rice"}, Calories: 1100}},
		"Tuesday": {{Name: "Breakfast", Foods: []string{"eggs"}, Calories: 1500}},
	}}
	if got := p.DailyCalories()["Monday"]; got != 2000 {
		t.Fatalf("Monday total = %d, want 2000", got)
	}
	err := p.CheckCalories(2000, CalorieTolerance)
	if err == nil {
		t.Fatal("expected Tuesday to be out of range")
	}
	if !strings.Contains(err.Error(), "Tuesday=1500") || strings.Contains(err.Error(), "Monday") {
		t.Fatalf("unexpected error %q", err.Error())
	}
	if err := p.CheckCalories(1700, 0.25); err != nil {
		t.Fatalf("expected both days within 25%%: %v", err)
	}
}

func TestWorkoutPlanToYAML(t *testing.T) {
	p := WorkoutPlan{Days: map[string][]Exercise{"Monday": {{Exercise: "Squat", Sets: 3, Reps: 5, Rest: 90}}}}
	b, err := p.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	for _, want := range []string{"days:", "Monday:", "exercise: Squat", "rest: 90"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("yaml missing %q:\n%s", want, b)
		}
	}
}

func TestPlanJSON_NilCollectionsAreEmpty(t *testing.T) {
	cases := []struct {
		name string
		in   interface{ ToJSON() ([]byte, error) }
		want string
	}{
		{"nil workout days", WorkoutPlan{}, `{"days":{}}`},
		{"nil exercise list", WorkoutPlan{Days: map[string][]Exercise{"Monday": nil}}, `{"days":{"Monday":[]}}`},
		{"nil diet days", DietPlan{}, `{"days":{}}`},
		{"nil meal list", DietPlan{Days: map[string][]Meal{"Monday": nil}}, `{"days":{"Monday":[]}}`},
		{"nil foods", DietPlan{Days: map[string][]Meal{"Monday": {{Name: "x", Calories: 10}}}}, `{"days":{"Monday":[{"name":"x","foods":[],"calories":10}]}}`},
	}
	for _, tc := range cases {
		b, err := tc.in.ToJSON()
		if err != nil {
			t.Fatalf("%s: ToJSON: %v", tc.name, err)
		}
		if string(b) != tc.want {
			t.Fatalf("%s: ToJSON = %s, want %s", tc.name, b, tc.want)
		}
	}
}
