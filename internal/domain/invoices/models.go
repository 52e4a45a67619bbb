package invoices

import "time"

type Invoice struct {
	ID             string     `json:"id"`
	PccID          string     `json:"pccId,omitempty"`
	TimesheetID    string     `json:"timesheetId,omitempty"`
	ClientID       string     `json:"clientId,omitempty"`
	ClientName     string     `json:"clientName,omitempty"`
	Status         string     `json:"status"`
	Amount         float64    `json:"amount"`
	TotalAmount    float64    `json:"totalAmount"`
	InvoiceDate    time.Time  `json:"invoiceDate"`
	InvoiceNum     string     `json:"invoiceNum"`
	LastWorkingDay *time.Time `json:"lastWorkingDay,omitempty"`
	DocPath        string     `json:"docPath,omitempty"`
	ShowInvoices   bool       `json:"showInvoices"`
	CreatedOn      time.Time  `json:"createdOn"`
}

type LineItem struct {
	ID          int     `json:"id"`
	InvoiceID   string  `json:"invoiceId"`
	Type        int     `json:"type"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
	TcrID       int     `json:"tcrId"`
	TimesheetID string  `json:"timesheetId,omitempty"`
	Label       string  `json:"label"`

	// Resolved on the detail read path; never written back.
	RateTypeName      string `json:"rateTypeName,omitempty"`
	RateFrequencyName string `json:"rateFrequencyName,omitempty"`
}

type Detail struct {
	Invoice
	LineItems []LineItem `json:"lineItems"`
}

// GenerateResult reports on a generation run. Line items and the header
// fields describe the first invoice created; TotalAmount sums every
// invoice in the run.
type GenerateResult struct {
	FirstInvoiceID  string     `json:"firstInvoiceId"`
	InvoiceNum      string     `json:"invoiceNum"`
	InvoiceDate     time.Time  `json:"invoiceDate"`
	LineItems       []LineItem `json:"lineItems"`
	TotalAmount     float64    `json:"totalAmount"`
	InvoicesCreated int        `json:"invoicesCreated"`
}

// billableHour is one contractor-day eligible for invoicing, with its
// live breakdown rows.
type billableHour struct {
	TchID         string
	PccID         string
	TimesheetID   string
	ClientID      string
	ClientName    string
	CandidateName string
	Breakdown     []breakdownRow
}

type breakdownRow struct {
	TcrID      int
	RateTypeID int
	Quantity   float64
	BillRate   float64
}
