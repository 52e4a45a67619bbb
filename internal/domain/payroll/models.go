package payroll

import "time"

type Period struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type PeriodInput struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// RunTotals are the per-contractor hour and pay buckets aggregated from the
// period's entries. Overtime and the separate bank-holiday bucket exist as
// columns but stay zero: bank holiday hours are paid through the holiday
// bucket at the snapshotted bank-holiday rate.
type RunTotals struct {
	TotalHours       float64 `json:"totalHours"`
	StandardHours    float64 `json:"standardHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	HolidayHours     float64 `json:"holidayHours"`
	BankHolidayHours float64 `json:"bankHolidayHours"`
	WeekendHours     float64 `json:"weekendHours"`
	OnCallHours      float64 `json:"onCallHours"`
	StandardPay      float64 `json:"standardPay"`
	OvertimePay      float64 `json:"overtimePay"`
	HolidayPay       float64 `json:"holidayPay"`
	BankHolidayPay   float64 `json:"bankHolidayPay"`
	WeekendPay       float64 `json:"weekendPay"`
	OnCallPay        float64 `json:"onCallPay"`
	GrossPay         float64 `json:"grossPay"`
}

type Run struct {
	RunID        string `json:"runId"`
	PeriodID     string `json:"periodId"`
	ContractorID string `json:"contractorId"`
	RunTotals
	Deductions
	NetPay float64 `json:"netPay"`
	Status string  `json:"status"`
}

type Summary struct {
	SummaryID        string  `json:"summaryId"`
	PeriodID         string  `json:"periodId"`
	TotalContractors int     `json:"totalContractors"`
	TotalHours       float64 `json:"totalHours"`
	TotalGrossPay    float64 `json:"totalGrossPay"`
	TotalDeductions  float64 `json:"totalDeductions"`
	TotalNetPay      float64 `json:"totalNetPay"`
	TotalTax         float64 `json:"totalTax"`
	TotalPRSI        float64 `json:"totalPrsi"`
	TotalUSC         float64 `json:"totalUsc"`
}

type CalcResult struct {
	PeriodID         string  `json:"periodId"`
	TotalContractors int     `json:"totalContractors"`
	TotalGrossPay    float64 `json:"totalGrossPay"`
	TotalDeductions  float64 `json:"totalDeductions"`
	TotalNetPay      float64 `json:"totalNetPay"`
	Runs             []Run   `json:"runs"`
}

// HourRow is one contractor-day inside the period, carrying the rate
// snapshots captured when the hours were logged.
type HourRow struct {
	ContractorID        string
	StandardHours       float64
	BankHolidayHours    float64
	WeekendHours        float64
	OnCallHours         float64
	StandardPayRate     float64
	BankHolidayPayRate  float64
	WeekendPayRate      float64
	OnCallPayRate       float64
}
