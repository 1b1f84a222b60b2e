package plans

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validRow(days string) PlanRow {
	return PlanRow{
		ExerciseID: uuid.New(),
		Sets:       3,
		Reps:       "8-12",
		DayTokens:  days,
	}
}

func TestValidatePlanAcceptsWithinCap(t *testing.T) {
	rows := []PlanRow{
		validRow("Mon, Wed"),
		validRow("wed,fri"),
		validRow("Sat"),
	}

	result := ValidatePlan(rows, 6)
	if !result.Accepted {
		t.Fatalf("expected acceptance, got %+v", result)
	}
	if result.DistinctDays != 4 {
		t.Fatalf("expected 4 distinct days (mon wed fri sat), got %d", result.DistinctDays)
	}
	if result.Err() != nil {
		t.Fatalf("accepted result should have nil Err, got %v", result.Err())
	}
}

func TestValidatePlanAcceptsExactlyAtCap(t *testing.T) {
	rows := []PlanRow{
		validRow("mon,tue,wed"),
		validRow("thu,fri,sat"),
	}
	result := ValidatePlan(rows, 6)
	if !result.Accepted {
		t.Fatalf("6 distinct days with cap 6 should pass, got %+v", result)
	}
}

func TestValidatePlanRejectsOverCap(t *testing.T) {
	rows := []PlanRow{
		validRow("mon"), validRow("tue"), validRow("wed"),
		validRow("thu"), validRow("fri"), validRow("sat"),
		validRow("sun"),
	}

	result := ValidatePlan(rows, 6)
	if result.Accepted {
		t.Fatal("7 distinct days with cap 6 should be rejected")
	}

	var tooMany *TooManyTrainingDaysError
	if !errors.As(result.PlanErr, &tooMany) {
		t.Fatalf("expected TooManyTrainingDaysError, got %v", result.PlanErr)
	}
	if tooMany.Max != 6 || tooMany.Observed != 7 {
		t.Fatalf("unexpected counts: %+v", tooMany)
	}

	msg := tooMany.Error()
	if !strings.Contains(msg, "6") || !strings.Contains(msg, "7") {
		t.Fatalf("message must cite both the cap and the observed count: %q", msg)
	}
}

func TestValidatePlanRejectsEmptySubmission(t *testing.T) {
	result := ValidatePlan(nil, 6)
	if result.Accepted {
		t.Fatal("empty submission should be rejected")
	}
	if !errors.Is(result.PlanErr, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", result.PlanErr)
	}
}

func TestValidatePlanRejectsWhenNoRowSurvives(t *testing.T) {
	rows := []PlanRow{
		{ExerciseID: uuid.Nil, Sets: 3, Reps: "10", DayTokens: "mon"},
		{ExerciseID: uuid.New(), Sets: 0, Reps: "10", DayTokens: "tue"},
	}

	result := ValidatePlan(rows, 6)
	if result.Accepted {
		t.Fatal("plan with only invalid rows should be rejected")
	}
	if !errors.Is(result.PlanErr, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", result.PlanErr)
	}
	if len(result.RowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %v", len(result.RowErrors), result.RowErrors)
	}
}

func TestValidatePlanAccumulatesRowErrors(t *testing.T) {
	rows := []PlanRow{
		validRow("mon"),
		{ExerciseID: uuid.New(), Sets: -1, Reps: "  ", DayTokens: "tue"},
		validRow("wed"),
		{ExerciseID: uuid.New(), Sets: 3, Reps: "10", DayTokens: " , "},
	}

	result := ValidatePlan(rows, 6)
	if result.Accepted {
		t.Fatal("plan with invalid rows must not be accepted")
	}
	if result.PlanErr != nil {
		t.Fatalf("two valid rows exist, plan-level error should be nil, got %v", result.PlanErr)
	}
	if len(result.RowErrors) != 3 {
		t.Fatalf("expected 3 accumulated row errors, got %d: %v", len(result.RowErrors), result.RowErrors)
	}
	// invalid rows must not contribute their days
	if result.DistinctDays != 2 {
		t.Fatalf("expected 2 distinct days from valid rows only, got %d", result.DistinctDays)
	}
	if result.Err() == nil {
		t.Fatal("rejected result must surface a non-nil Err")
	}
}

func TestValidatePlanDuplicateDaysCollapse(t *testing.T) {
	rows := []PlanRow{
		validRow("mon,mon, MON"),
		validRow("Mon"),
	}
	result := ValidatePlan(rows, 1)
	if !result.Accepted {
		t.Fatalf("duplicates should collapse to one day, got %+v", result)
	}
	if result.DistinctDays != 1 {
		t.Fatalf("expected 1 distinct day, got %d", result.DistinctDays)
	}
}

func TestNormalizeDayTokens(t *testing.T) {
	got := NormalizeDayTokens(" Mon , ,WED,fri ")
	want := []string{"mon", "wed", "fri"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
