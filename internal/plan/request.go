package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/workout-request.json
var WorkoutRequestSchema string

//go:embed schemas/diet-request.json
var DietRequestSchema string

const (
	specsField = "plan_specifications"
	bodyField  = "(body)"
)

var (
	workoutRequestSchema = mustSchema(WorkoutRequestSchema)
	dietRequestSchema    = mustSchema(DietRequestSchema)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return schema
}

// DecodeWorkoutRequest validates a {"plan_specifications": {...}} body and
// returns the workout specification it carries.
func DecodeWorkoutRequest(body []byte) (WorkoutSpec, error) {
	var req struct {
		PlanSpecifications WorkoutSpec `json:"plan_specifications"`
	}
	if err := decodeRequest(workoutRequestSchema, body, &req); err != nil {
		return WorkoutSpec{}, err
	}
	if err := req.PlanSpecifications.Validate(); err != nil {
		return WorkoutSpec{}, err
	}
	return req.PlanSpecifications, nil
}

// DecodeDietRequest validates a {"plan_specifications": {...}} body and
// returns the diet specification it carries.
func DecodeDietRequest(body []byte) (DietSpec, error) {
	var req struct {
		PlanSpecifications DietSpec `json:"plan_specifications"`
	}
	if err := decodeRequest(dietRequestSchema, body, &req); err != nil {
		return DietSpec{}, err
	}
	if err := req.PlanSpecifications.Validate(); err != nil {
		return DietSpec{}, err
	}
	return req.PlanSpecifications, nil
}

func decodeRequest(schema *gojsonschema.Schema, body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &ValidationError{Fields: []FieldError{{Field: bodyField, Reason: "request body is empty"}}}
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationError{Fields: []FieldError{{Field: bodyField, Reason: "invalid json"}}}
	}
	if !result.Valid() {
		return &ValidationError{Fields: collect(result.Errors())}
	}
	// The schema accepts integral floats such as 3.0; the decoder does not.
	if err := json.Unmarshal(body, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			field := strings.TrimPrefix(te.Field, specsField+".")
			return &ValidationError{Fields: []FieldError{{Field: field, Reason: "must be an integer"}}}
		}
		return &ValidationError{Fields: []FieldError{{Field: bodyField, Reason: "invalid json"}}}
	}
	return nil
}

func collect(errs []gojsonschema.ResultError) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		field := e.Field()
		if e.Type() == "required" {
			if p, ok := e.Details()["property"].(string); ok {
				if field == gojsonschema.STRING_CONTEXT_ROOT {
					field = p
				} else {
					field = field + "." + p
				}
			}
		}
		field = strings.TrimPrefix(field, specsField+".")
		out = append(out, FieldError{Field: field, Reason: e.Description()})
	}
	return out
}
