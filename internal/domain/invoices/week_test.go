package invoices

import (
	"errors"
	"testing"
	"time"
)

func TestResolveWeekISO(t *testing.T) {
	week, err := ResolveWeek("2025-W03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)
	if !week.Start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, week.Start)
	}
	if week.Start.Weekday() != time.Monday {
		t.Fatalf("week must start on Monday, got %v", week.Start.Weekday())
	}
	if !week.End.Equal(wantStart.AddDate(0, 0, 6)) {
		t.Fatalf("expected end Sunday, got %v", week.End)
	}
	if week.BillingDate.Weekday() != time.Friday {
		t.Fatalf("billing date must be Friday, got %v", week.BillingDate.Weekday())
	}
}

func TestResolveWeekFirstWeekContainsJan4(t *testing.T) {
	// 2027-01-04 is a Monday, so week 1 starts on it.
	week, err := ResolveWeek("2027-W01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC)
	if !week.Start.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, week.Start)
	}

	// 2021-01-04 is also a Monday but Jan 1-3 belong to the previous
	// ISO year, so week 1 still anchors on the 4th.
	week, err = ResolveWeek("2021-W01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC)
	if !week.Start.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, week.Start)
	}
}

func TestResolveWeekFromDate(t *testing.T) {
	for _, day := range []string{"2025-01-13", "2025-01-15", "2025-01-19"} {
		week, err := ResolveWeek(day)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", day, err)
		}
		want := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)
		if !week.Start.Equal(want) {
			t.Fatalf("%s: expected Monday %v, got %v", day, want, week.Start)
		}
	}
}

func TestResolveWeekBadInput(t *testing.T) {
	for _, value := range []string{"", "2025-W00", "2025-W54", "W03", "2025/01/15", "2025-Wxx"} {
		if _, err := ResolveWeek(value); !errors.Is(err, ErrBadWeekFormat) {
			t.Fatalf("expected ErrBadWeekFormat for %q, got %v", value, err)
		}
	}
}
