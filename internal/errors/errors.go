// Package errors defines the typed error taxonomy for dataset generation.
// Every failure surfaced by the generator is a *GenError carrying the stage
// that raised it and the broken invariant, so callers can report precisely
// which guarantee did not hold.
package errors

import (
	"fmt"
)

// Kind identifies the class of generation failure
type Kind string

const (
	// KindDuplicateGrain means two budget cells share the same
	// (fiscal year, fiscal period, GL account, cost center) key
	KindDuplicateGrain Kind = "duplicate_grain"
	// KindBrokenReference means a fact row references a missing dimension row
	KindBrokenReference Kind = "broken_reference"
	// KindDateOutOfRange means a posting date falls outside the configured range
	KindDateOutOfRange Kind = "date_out_of_range"
	// KindNegativeAmount means a budget amount violates the sign constraint
	KindNegativeAmount Kind = "negative_amount"
	// KindExecution covers I/O and other non-invariant failures
	KindExecution Kind = "execution"
)

// GenError is a generation failure tied to a pipeline stage
type GenError struct {
	Kind    Kind
	Stage   string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *GenError) Error() string {
	if e == nil {
		return "unknown generation error"
	}
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Stage, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *GenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a *GenError of the same kind, so sentinel
// comparisons like errors.Is(err, &GenError{Kind: KindDuplicateGrain}) work.
func (e *GenError) Is(target error) bool {
	t, ok := target.(*GenError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Stage == "" || t.Stage == e.Stage)
}

// NewDuplicateGrain creates a duplicate budget grain error
func NewDuplicateGrain(stage string, count int) *GenError {
	return &GenError{
		Kind:    KindDuplicateGrain,
		Stage:   stage,
		Message: fmt.Sprintf("budget grain not unique; duplicates found: %d", count),
		Context: map[string]interface{}{"duplicates": count},
	}
}

// NewBrokenReference creates a referential integrity error
func NewBrokenReference(stage, table, column, value string) *GenError {
	return &GenError{
		Kind:    KindBrokenReference,
		Stage:   stage,
		Message: fmt.Sprintf("%s.%s references missing dimension value %q", table, column, value),
		Context: map[string]interface{}{"table": table, "column": column, "value": value},
	}
}

// NewDateOutOfRange creates a posting date bounds error
func NewDateOutOfRange(stage, date, min, max string) *GenError {
	return &GenError{
		Kind:    KindDateOutOfRange,
		Stage:   stage,
		Message: fmt.Sprintf("posting date %s outside range [%s, %s]", date, min, max),
		Context: map[string]interface{}{"date": date, "min": min, "max": max},
	}
}

// NewNegativeAmount creates a sign constraint error
func NewNegativeAmount(stage string, amount float64) *GenError {
	return &GenError{
		Kind:    KindNegativeAmount,
		Stage:   stage,
		Message: fmt.Sprintf("negative budget amount %.2f", amount),
		Context: map[string]interface{}{"amount": amount},
	}
}

// NewExecution wraps a non-invariant failure with its stage
func NewExecution(stage string, cause error) *GenError {
	return &GenError{
		Kind:    KindExecution,
		Stage:   stage,
		Message: "stage execution failed",
		Cause:   cause,
	}
}
