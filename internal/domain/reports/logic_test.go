package reports

import (
	"testing"
	"time"
)

func TestBuildItemFlatDeductions(t *testing.T) {
	inv := invoiceRef{ID: "inv-1", Date: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)}
	h := HourData{StandardHours: 40, StandardRate: 25}

	item := BuildItem("2025-W03", inv, "Aoife Kelly", "aoife@example.com", "Meridian", "Ward A", h)
	if item.GrossPay != 1000 {
		t.Fatalf("expected gross 1000, got %v", item.GrossPay)
	}
	if item.TaxDeduction != 200 || item.PRSIDeduction != 40 || item.USCDeduction != 20 {
		t.Fatalf("expected flat 20/4/2 deductions, got %v/%v/%v", item.TaxDeduction, item.PRSIDeduction, item.USCDeduction)
	}
	if item.TotalDeductions != 260 {
		t.Fatalf("expected total deductions 260, got %v", item.TotalDeductions)
	}
	if item.NetPay != 740 {
		t.Fatalf("expected net 740, got %v", item.NetPay)
	}
}

func TestBuildItemWeekendCountedAsOvertimeToo(t *testing.T) {
	h := HourData{WeekendHours: 8, WeekendRate: 30}
	item := BuildItem("2025-W03", invoiceRef{}, "", "", "", "", h)

	if item.OvertimeHours != 8 || item.WeekendHours != 8 {
		t.Fatalf("weekend hours must appear in both buckets, got overtime %v weekend %v", item.OvertimeHours, item.WeekendHours)
	}
	if item.TotalHours != 16 {
		t.Fatalf("expected total hours 16 with the doubled weekend bucket, got %v", item.TotalHours)
	}
	if item.TotalPay != 480 {
		t.Fatalf("expected total pay 480 (weekend paid twice), got %v", item.TotalPay)
	}
}

func TestSummarizeDistinctCandidates(t *testing.T) {
	items := []Item{
		{CandidateName: "A", TotalHours: 40, GrossPay: 1000, TotalDeductions: 260, NetPay: 740},
		{CandidateName: "A", TotalHours: 8, GrossPay: 240, TotalDeductions: 62.4, NetPay: 177.6},
		{CandidateName: "B", TotalHours: 20, GrossPay: 500, TotalDeductions: 130, NetPay: 370},
	}
	summary := Summarize(items, []string{"2025-W03"})
	if summary.TotalCandidates != 2 {
		t.Fatalf("expected 2 distinct candidates, got %d", summary.TotalCandidates)
	}
	if summary.TotalHours != 68 {
		t.Fatalf("expected total hours 68, got %v", summary.TotalHours)
	}
	if summary.TotalGrossPay != 1740 {
		t.Fatalf("expected gross 1740, got %v", summary.TotalGrossPay)
	}
}

func TestWeekRangeISOWeek(t *testing.T) {
	start, end, err := WeekRange("2025-W03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Weekday() != time.Monday {
		t.Fatalf("ISO week must start Monday, got %v", start.Weekday())
	}
	if !end.Equal(start.AddDate(0, 0, 6)) {
		t.Fatalf("expected Sunday end, got %v", end)
	}
}

func TestWeekRangePlainDateDoesNotSnap(t *testing.T) {
	// A Wednesday stays the window start.
	start, end, err := WeekRange("2025-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Fatalf("expected start %v, got %v", want, start)
	}
	if !end.Equal(want.AddDate(0, 0, 6)) {
		t.Fatalf("expected end six days later, got %v", end)
	}
}
