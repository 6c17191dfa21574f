package features

import (
	"fmt"
	"strings"
)

// InvalidFeatureValueError reports a non-empty value that is not a finite number.
type InvalidFeatureValueError struct {
	Feature  string
	RawValue string
}

func (e *InvalidFeatureValueError) Error() string {
	return fmt.Sprintf("value for %q is not a valid number: %q", e.Feature, e.RawValue)
}

// SchemaMismatchError means a vector's keys or columns differ from the schema.
// It signals a wiring bug, not bad user input.
type SchemaMismatchError struct {
	Missing []string
	Unknown []string
	Reason  string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown "+strings.Join(e.Unknown, ", "))
	}
	if len(parts) == 0 {
		return "schema mismatch"
	}
	return "schema mismatch: " + strings.Join(parts, "; ")
}

// InternalError is an invariant violation inside preprocessing, such as a
// missing value reaching the scaler.
type InternalError struct {
	Stage string
	Err   error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Stage, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
