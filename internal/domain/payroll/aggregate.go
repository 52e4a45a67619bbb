package payroll

// AggregateHours folds the period's entries into per-contractor totals.
// Pay is computed row by row against that row's rate snapshot, so a rate
// change mid-period pays each day at the rate in force when it was logged.
// Returned contractor IDs preserve first-seen order.
func AggregateHours(rows []HourRow) (map[string]*RunTotals, []string) {
	totals := make(map[string]*RunTotals)
	var order []string

	for _, row := range rows {
		t, ok := totals[row.ContractorID]
		if !ok {
			t = &RunTotals{}
			totals[row.ContractorID] = t
			order = append(order, row.ContractorID)
		}

		t.StandardHours += row.StandardHours
		t.HolidayHours += row.BankHolidayHours
		t.WeekendHours += row.WeekendHours
		t.OnCallHours += row.OnCallHours
		t.TotalHours += row.StandardHours + row.BankHolidayHours + row.WeekendHours + row.OnCallHours

		t.StandardPay += row.StandardHours * row.StandardPayRate
		t.HolidayPay += row.BankHolidayHours * row.BankHolidayPayRate
		t.WeekendPay += row.WeekendHours * row.WeekendPayRate
		t.OnCallPay += row.OnCallHours * row.OnCallPayRate

		t.GrossPay = t.StandardPay + t.HolidayPay + t.WeekendPay + t.OnCallPay
	}
	return totals, order
}
