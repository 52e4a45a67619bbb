package reports

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/invoices"
)

// WeekRange resolves a selected week to an inclusive date window. ISO weeks
// ("2025-W03") run Monday to Sunday; a plain date starts the window on that
// date and covers the following six days without snapping to Monday.
func WeekRange(week string) (time.Time, time.Time, error) {
	if strings.Contains(week, "-W") {
		wk, err := invoices.ResolveWeek(week)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return wk.Start, wk.End, nil
	}
	start, err := time.Parse("2006-01-02", strings.TrimSpace(week))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", invoices.ErrBadWeekFormat, week)
	}
	return start, start.AddDate(0, 0, 6), nil
}

// BuildItem assembles one report row. The weekend bucket is deliberately
// counted twice: once as weekend and once as overtime, which also doubles
// it inside the totals. The deductions use the report's flat rates.
func BuildItem(week string, inv invoiceRef, candidateName, candidateEmail, clientName, costCenter string, h HourData) Item {
	item := Item{
		CandidateName:  candidateName,
		CandidateEmail: candidateEmail,
		ClientName:     clientName,
		CostCenter:     costCenter,
		Week:           week,
		InvoiceID:      inv.ID,
		InvoiceDate:    inv.Date,

		StandardHours: h.StandardHours,
		OvertimeHours: h.WeekendHours,
		HolidayHours:  h.BankHolidayHours,
		WeekendHours:  h.WeekendHours,
		OnCallHours:   h.OnCallHours,

		StandardRate: h.StandardRate,
		OvertimeRate: h.WeekendRate,
		HolidayRate:  h.BankHolidayRate,
		WeekendRate:  h.WeekendRate,
		OnCallRate:   h.OnCallRate,
	}

	item.TotalHours = item.StandardHours + item.OvertimeHours + item.HolidayHours + item.WeekendHours + item.OnCallHours

	item.StandardPay = item.StandardHours * item.StandardRate
	item.OvertimePay = item.OvertimeHours * item.OvertimeRate
	item.HolidayPay = item.HolidayHours * item.HolidayRate
	item.WeekendPay = item.WeekendHours * item.WeekendRate
	item.OnCallPay = item.OnCallHours * item.OnCallRate
	item.TotalPay = item.StandardPay + item.OvertimePay + item.HolidayPay + item.WeekendPay + item.OnCallPay

	item.GrossPay = item.TotalPay
	item.TaxDeduction = item.GrossPay * flatTaxRate
	item.PRSIDeduction = item.GrossPay * flatPRSIRate
	item.USCDeduction = item.GrossPay * flatUSCRate
	item.TotalDeductions = item.TaxDeduction + item.PRSIDeduction + item.USCDeduction
	item.NetPay = item.GrossPay - item.TotalDeductions
	return item
}

func Summarize(items []Item, weeks []string) Summary {
	candidates := make(map[string]bool)
	summary := Summary{WeeksCovered: weeks}
	for _, item := range items {
		candidates[item.CandidateName] = true
		summary.TotalHours += item.TotalHours
		summary.TotalGrossPay += item.GrossPay
		summary.TotalDeductions += item.TotalDeductions
		summary.TotalNetPay += item.NetPay
	}
	summary.TotalCandidates = len(candidates)
	return summary
}
