package hours

import "testing"

func TestDiffRateHoursInsertUpdateDelete(t *testing.T) {
	existing := []RateHour{
		{TcrhID: 1, RateTypeID: 1, RateFrequencyID: 1, Quantity: 8},
		{TcrhID: 2, RateTypeID: 3, RateFrequencyID: 1, Quantity: 4},
	}
	incoming := []RateHourInput{
		{RateTypeID: 1, RateFrequencyID: 1, Quantity: 6, PayRate: 30, BillRate: 45},
		{RateTypeID: 4, RateFrequencyID: 1, Quantity: 8, PayRate: 60, BillRate: 80},
	}

	diff := DiffRateHours(existing, incoming)
	if len(diff.Updates) != 1 || diff.Updates[0].TcrhID != 1 || diff.Updates[0].Input.Quantity != 6 {
		t.Fatalf("expected update of row 1 to quantity 6, got %+v", diff.Updates)
	}
	if len(diff.Inserts) != 1 || diff.Inserts[0].RateTypeID != 4 {
		t.Fatalf("expected insert of rate type 4, got %+v", diff.Inserts)
	}
	if len(diff.Deletes) != 1 || diff.Deletes[0] != 2 {
		t.Fatalf("expected delete of row 2, got %+v", diff.Deletes)
	}
}

func TestDiffRateHoursIgnoresZeroQuantity(t *testing.T) {
	existing := []RateHour{
		{TcrhID: 1, RateTypeID: 1, RateFrequencyID: 1, Quantity: 8},
	}
	incoming := []RateHourInput{
		{RateTypeID: 1, RateFrequencyID: 1, Quantity: 0},
		{RateTypeID: 3, RateFrequencyID: 1, Quantity: -2},
	}

	diff := DiffRateHours(existing, incoming)
	if len(diff.Inserts) != 0 {
		t.Fatalf("zero quantity must not insert, got %+v", diff.Inserts)
	}
	if len(diff.Updates) != 0 {
		t.Fatalf("zero quantity must not update, got %+v", diff.Updates)
	}
	if len(diff.Deletes) != 0 {
		t.Fatalf("zero quantity must not delete the stored row, got %+v", diff.Deletes)
	}
}

func TestApplyScalarsOverwritesAndTotals(t *testing.T) {
	entry := Entry{StandardHours: 8, WeekendHours: 4, HolidayHours: 2}
	std := 6.0
	updated := ApplyScalars(entry, EntryInput{StandardHours: &std})
	if updated.StandardHours != 6 {
		t.Fatalf("expected standard hours 6, got %v", updated.StandardHours)
	}
	if updated.WeekendHours != 4 || updated.HolidayHours != 2 {
		t.Fatalf("omitted fields must keep stored values, got %+v", updated)
	}
	if updated.TotalHours != 12 {
		t.Fatalf("expected total 12, got %v", updated.TotalHours)
	}
}

func TestApplyScalarsOverwritesRateSnapshots(t *testing.T) {
	entry := Entry{StandardPayRate: 40, StandardBillRate: 55, WeekendPayRate: 60}
	pay := 45.0
	bill := 62.5
	updated := ApplyScalars(entry, EntryInput{StandardPayRate: &pay, StandardBillRate: &bill})
	if updated.StandardPayRate != 45 || updated.StandardBillRate != 62.5 {
		t.Fatalf("expected corrected snapshot 45/62.5, got %v/%v",
			updated.StandardPayRate, updated.StandardBillRate)
	}
	if updated.WeekendPayRate != 60 {
		t.Fatalf("omitted snapshot fields must keep stored values, got %v", updated.WeekendPayRate)
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}

func TestHolidayBalanceAccrual(t *testing.T) {
	balance := HolidayBalance(10, 0, 40, 0, 0)
	if !almostEqual(balance, 13.2) {
		t.Fatalf("expected 13.2 after accruing 8%% of 40 hours, got %v", balance)
	}
}

func TestHolidayBalanceIdempotentRelog(t *testing.T) {
	// Logging the same hours again produces zero deltas, so the balance
	// must not move.
	balance := HolidayBalance(13.2, 40, 40, 2, 2)
	if !almostEqual(balance, 13.2) {
		t.Fatalf("expected balance unchanged at 13.2, got %v", balance)
	}
}

func TestHolidayBalanceDeduction(t *testing.T) {
	balance := HolidayBalance(5, 0, 0, 0, 3)
	if balance != 2 {
		t.Fatalf("expected 2 after deducting 3 holiday hours, got %v", balance)
	}
}

func TestHolidayBalanceFloorsAtZero(t *testing.T) {
	balance := HolidayBalance(1, 0, 0, 0, 8)
	if balance != 0 {
		t.Fatalf("expected balance floored at exactly 0, got %v", balance)
	}
}

func TestHolidayBalanceReducedStandardHours(t *testing.T) {
	// Correcting an over-logged day claws the accrual back.
	balance := HolidayBalance(13.2, 40, 30, 0, 0)
	if !almostEqual(balance, 12.4) {
		t.Fatalf("expected 12.4 after standard hours drop by 10, got %v", balance)
	}
}
