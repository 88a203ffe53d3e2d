package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aaronromeo/fitgen/internal/plan"
	"github.com/xeipuuv/gojsonschema"
)

var (
	workoutPlanSchema = mustSchema("workout plan", WorkoutPlanSchema)
	dietPlanSchema    = mustSchema("diet plan", DietPlanSchema)
)

func mustSchema(name, s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return schema
}

// WorkoutPlanFromJSON validates b against the workout plan schema and decodes it.
func WorkoutPlanFromJSON(b []byte) (plan.WorkoutPlan, error) {
	if err := ValidateWorkoutJSON(b); err != nil {
		return plan.WorkoutPlan{}, err
	}
	var p plan.WorkoutPlan
	if err := decodeStrict(b, &p); err != nil {
		return plan.WorkoutPlan{}, err
	}
	return p, nil
}

// DietPlanFromJSON validates b against the diet plan schema and decodes it.
func DietPlanFromJSON(b []byte) (plan.DietPlan, error) {
	if err := ValidateDietJSON(b); err != nil {
		return plan.DietPlan{}, err
	}
	var p plan.DietPlan
	if err := decodeStrict(b, &p); err != nil {
		return plan.DietPlan{}, err
	}
	return p, nil
}

func ValidateWorkoutJSON(b []byte) error {
	return validate(workoutPlanSchema, "workout plan", b)
}

func ValidateDietJSON(b []byte) error {
	return validate(dietPlanSchema, "diet plan", b)
}

func validate(schema *gojsonschema.Schema, name string, b []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("%s json parse: %w", name, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%s json invalid: %s", name, collect(result.Errors()))
	}
	return nil
}

// decodeStrict rejects unknown fields, non-integral numbers for int fields,
// and anything after the first JSON value.
func decodeStrict(b []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode: unexpected data after JSON object")
	}
	return nil
}

func collect(errs []gojsonschema.ResultError) string {
	var buf bytes.Buffer
	for _, e := range errs {
		buf.WriteString(e.String())
		buf.WriteByte(';')
	}
	return buf.String()
}
