package service

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing or supplied
// empty. Handlers surface it as a 400 with the offending field names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing or empty: %s", strings.Join(e.Fields, ", "))
}

// FieldMap renders the error in the field→message shape used by the
// response envelope.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f] = "must not be empty"
	}
	return m
}
