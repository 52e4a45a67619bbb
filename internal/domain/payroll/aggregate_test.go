package payroll

import "testing"

func TestAggregateHoursPerRowSnapshots(t *testing.T) {
	rows := []HourRow{
		{ContractorID: "a", StandardHours: 8, StandardPayRate: 30},
		{ContractorID: "a", StandardHours: 8, StandardPayRate: 35},
		{ContractorID: "b", WeekendHours: 4, WeekendPayRate: 45},
	}

	totals, order := AggregateHours(rows)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected order [a b], got %v", order)
	}

	a := totals["a"]
	if a.StandardHours != 16 {
		t.Fatalf("expected 16 standard hours, got %v", a.StandardHours)
	}
	// 8x30 + 8x35: each day at its own snapshotted rate.
	if a.StandardPay != 520 {
		t.Fatalf("expected standard pay 520, got %v", a.StandardPay)
	}
	if a.GrossPay != 520 {
		t.Fatalf("expected gross 520, got %v", a.GrossPay)
	}

	b := totals["b"]
	if b.WeekendPay != 180 || b.TotalHours != 4 {
		t.Fatalf("expected weekend pay 180 over 4 hours, got %+v", b)
	}
}

func TestAggregateHoursBankHolidayPaysThroughHolidayBucket(t *testing.T) {
	rows := []HourRow{
		{ContractorID: "a", BankHolidayHours: 8, BankHolidayPayRate: 60},
	}
	totals, _ := AggregateHours(rows)
	a := totals["a"]
	if a.HolidayHours != 8 || a.HolidayPay != 480 {
		t.Fatalf("expected holiday bucket 8h/480, got %+v", a)
	}
	if a.BankHolidayHours != 0 || a.BankHolidayPay != 0 {
		t.Fatalf("bank holiday bucket must stay zero, got %+v", a)
	}
}
