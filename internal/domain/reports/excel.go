package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

var dataHeaders = []string{
	"Candidate Name", "Candidate Email", "Client Name", "Cost Center", "Week",
	"Invoice ID", "Invoice Date",
	"Standard Hours", "Overtime Hours", "Holiday Hours", "Weekend Hours", "On-Call Hours", "Total Hours",
	"Standard Rate", "Overtime Rate", "Holiday Rate", "Weekend Rate", "On-Call Rate",
	"Standard Pay", "Overtime Pay", "Holiday Pay", "Weekend Pay", "On-Call Pay",
	"Total Pay", "Gross Pay", "Tax Deduction", "PRSI Deduction", "USC Deduction",
	"Total Deductions", "Net Pay",
}

// writeWorkbook renders the report into an xlsx workbook with the data,
// summary and weeks sheets, and returns the file path.
func writeWorkbook(dir, reportID string, items []Item, summary Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("payroll_report_%s.xlsx", reportID))

	f := excelize.NewFile()
	defer f.Close()

	dataSheet := "Payroll Data"
	index, err := f.NewSheet(dataSheet)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	for i, header := range dataHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(dataSheet, cell, header); err != nil {
			return "", err
		}
	}
	for i, item := range items {
		values := []any{
			item.CandidateName, item.CandidateEmail, item.ClientName, item.CostCenter, item.Week,
			item.InvoiceID, item.InvoiceDate.Format("2006-01-02"),
			item.StandardHours, item.OvertimeHours, item.HolidayHours, item.WeekendHours, item.OnCallHours, item.TotalHours,
			item.StandardRate, item.OvertimeRate, item.HolidayRate, item.WeekendRate, item.OnCallRate,
			item.StandardPay, item.OvertimePay, item.HolidayPay, item.WeekendPay, item.OnCallPay,
			item.TotalPay, item.GrossPay, item.TaxDeduction, item.PRSIDeduction, item.USCDeduction,
			item.TotalDeductions, item.NetPay,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(dataSheet, cell, value); err != nil {
				return "", err
			}
		}
	}

	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return "", err
	}
	summaryRows := []struct {
		metric string
		value  any
	}{
		{"Total Candidates", summary.TotalCandidates},
		{"Total Hours", summary.TotalHours},
		{"Total Gross Pay", summary.TotalGrossPay},
		{"Total Deductions", summary.TotalDeductions},
		{"Total Net Pay", summary.TotalNetPay},
	}
	f.SetCellValue(summarySheet, "A1", "Metric")
	f.SetCellValue(summarySheet, "B1", "Value")
	for i, row := range summaryRows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+2), row.metric)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+2), row.value)
	}

	weeksSheet := "Weeks Covered"
	if _, err := f.NewSheet(weeksSheet); err != nil {
		return "", err
	}
	f.SetCellValue(weeksSheet, "A1", "Weeks Covered")
	for i, week := range summary.WeeksCovered {
		f.SetCellValue(weeksSheet, fmt.Sprintf("A%d", i+2), week)
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
