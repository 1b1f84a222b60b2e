package plans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyPlan rejects a submission with no valid exercise rows.
var ErrEmptyPlan = errors.New("plan has no valid exercise rows")

// TooManyTrainingDaysError reports a schedule exceeding the weekly cap.
type TooManyTrainingDaysError struct {
	Max      int
	Observed int
}

func (e *TooManyTrainingDaysError) Error() string {
	return fmt.Sprintf("plan schedules %d distinct training days, exceeding the maximum of %d", e.Observed, e.Max)
}

// PlanRow is one proposed exercise assignment as submitted by a trainer.
// DayTokens carries one or more comma-separated day names.
type PlanRow struct {
	ExerciseID uuid.UUID
	Sets       int
	Reps       string
	DayTokens  string
}

// RowError ties a validation message to the index of the submitted row.
type RowError struct {
	Index   int
	Field   string
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Index, e.Field, e.Message)
}

// ValidationResult is the outcome of one plan submission. Acceptance is
// all-or-nothing: any row error or plan error blocks persistence entirely.
type ValidationResult struct {
	Accepted     bool
	RowErrors    []RowError
	PlanErr      error
	DistinctDays int
}

// Err collapses the result into a single error, favoring the plan-level
// violation, for callers that only need pass/fail.
func (r ValidationResult) Err() error {
	if r.Accepted {
		return nil
	}
	if r.PlanErr != nil {
		return r.PlanErr
	}
	errs := make([]error, 0, len(r.RowErrors))
	for _, re := range r.RowErrors {
		errs = append(errs, re)
	}
	return errors.Join(errs...)
}

// ValidatePlan checks every submitted row and the distinct-day cap. Invalid
// rows are collected rather than aborting evaluation; they contribute no days
// to the cap check. maxTrainingDays is read from configuration at call time so
// an admin change applies to the very next submission.
func ValidatePlan(rows []PlanRow, maxTrainingDays int) ValidationResult {
	result := ValidationResult{}
	daySet := map[string]struct{}{}
	validRows := 0

	for i, row := range rows {
		valid := true

		if row.ExerciseID == uuid.Nil {
			result.RowErrors = append(result.RowErrors, RowError{Index: i, Field: "exercise", Message: "unknown exercise"})
			valid = false
		}
		if row.Sets < 1 {
			result.RowErrors = append(result.RowErrors, RowError{Index: i, Field: "sets", Message: "must be a positive integer"})
			valid = false
		}
		if strings.TrimSpace(row.Reps) == "" {
			result.RowErrors = append(result.RowErrors, RowError{Index: i, Field: "reps", Message: "is required"})
			valid = false
		}

		days := NormalizeDayTokens(row.DayTokens)
		if len(days) == 0 {
			result.RowErrors = append(result.RowErrors, RowError{Index: i, Field: "schedule_day", Message: "at least one day is required"})
			valid = false
		}

		if !valid {
			continue
		}
		validRows++
		for _, d := range days {
			daySet[d] = struct{}{}
		}
	}

	result.DistinctDays = len(daySet)

	if validRows == 0 {
		result.PlanErr = ErrEmptyPlan
		return result
	}
	if len(daySet) > maxTrainingDays {
		result.PlanErr = &TooManyTrainingDaysError{Max: maxTrainingDays, Observed: len(daySet)}
		return result
	}
	if len(result.RowErrors) > 0 {
		return result
	}

	result.Accepted = true
	return result
}

// NormalizeDayTokens splits a comma-separated day field, trims and lowercases
// each token, and drops empties. Duplicate tokens within the field survive
// here; they collapse in the validator's day set.
func NormalizeDayTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.ToLower(strings.TrimSpace(p))
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}
