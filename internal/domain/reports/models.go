package reports

import "time"

type Report struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	SelectedWeeks []string   `json:"selectedWeeks"`
	Status        string     `json:"status"`
	FilePath      string     `json:"filePath,omitempty"`
	FileSize      int64      `json:"fileSize"`
	CreatedOn     time.Time  `json:"createdOn"`
	GeneratedOn   *time.Time `json:"generatedOn,omitempty"`
}

type GenerateRequest struct {
	Name          string   `json:"reportName"`
	Description   string   `json:"description"`
	SelectedWeeks []string `json:"selectedWeeks"`
}

type GenerateResult struct {
	ReportID    string    `json:"reportId"`
	ReportName  string    `json:"reportName"`
	FilePath    string    `json:"filePath"`
	Status      string    `json:"status"`
	Summary     Summary   `json:"summary"`
	GeneratedOn time.Time `json:"generatedOn"`
}

// Item is one report row: a single invoice line item resolved back to the
// contractor-day it billed.
type Item struct {
	CandidateName   string    `json:"candidateName"`
	CandidateEmail  string    `json:"candidateEmail"`
	ClientName      string    `json:"clientName"`
	CostCenter      string    `json:"costCenter"`
	Week            string    `json:"week"`
	InvoiceID       string    `json:"invoiceId"`
	InvoiceDate     time.Time `json:"invoiceDate"`
	StandardHours   float64   `json:"standardHours"`
	OvertimeHours   float64   `json:"overtimeHours"`
	HolidayHours    float64   `json:"holidayHours"`
	WeekendHours    float64   `json:"weekendHours"`
	OnCallHours     float64   `json:"oncallHours"`
	TotalHours      float64   `json:"totalHours"`
	StandardRate    float64   `json:"standardRate"`
	OvertimeRate    float64   `json:"overtimeRate"`
	HolidayRate     float64   `json:"holidayRate"`
	WeekendRate     float64   `json:"weekendRate"`
	OnCallRate      float64   `json:"oncallRate"`
	StandardPay     float64   `json:"standardPay"`
	OvertimePay     float64   `json:"overtimePay"`
	HolidayPay      float64   `json:"holidayPay"`
	WeekendPay      float64   `json:"weekendPay"`
	OnCallPay       float64   `json:"oncallPay"`
	TotalPay        float64   `json:"totalPay"`
	GrossPay        float64   `json:"grossPay"`
	TaxDeduction    float64   `json:"taxDeduction"`
	PRSIDeduction   float64   `json:"prsiDeduction"`
	USCDeduction    float64   `json:"uscDeduction"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPay          float64   `json:"netPay"`
}

type Summary struct {
	TotalCandidates int      `json:"totalCandidates"`
	TotalHours      float64  `json:"totalHours"`
	TotalGrossPay   float64  `json:"totalGrossPay"`
	TotalDeductions float64  `json:"totalDeductions"`
	TotalNetPay     float64  `json:"totalNetPay"`
	WeeksCovered    []string `json:"weeksCovered"`
}

type AvailableWeek struct {
	Week  string `json:"week"`
	Label string `json:"label"`
}

// HourData is the contractor-day a line item resolves to, with its rate
// snapshots.
type HourData struct {
	ContractorID     string
	PccID            string
	StandardHours    float64
	WeekendHours     float64
	BankHolidayHours float64
	OnCallHours      float64
	StandardRate     float64
	WeekendRate      float64
	BankHolidayRate  float64
	OnCallRate       float64
}

type invoiceRef struct {
	ID       string
	Date     time.Time
	ClientID string
}
