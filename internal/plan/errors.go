package plan

import (
	"strconv"
	"strings"
)

// FieldError names one offending request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when a plan specification is rejected.
// Nothing downstream runs for a request that produced one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid plan specifications: " + strings.Join(parts, "; ")
}

func fieldIndex(field string, i int) string {
	return field + "." + strconv.Itoa(i)
}
