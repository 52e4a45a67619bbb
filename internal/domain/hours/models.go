package hours

import "time"

// Entry is a single contractor-day on a timesheet. The pay and bill rate
// columns are snapshots captured when the hours were logged, so later rate
// card edits never change what was recorded.
type Entry struct {
	TchID        string    `json:"tchId"`
	ContractorID string    `json:"contractorId"`
	WorkDate     time.Time `json:"workDate"`
	TimesheetID  string    `json:"timesheetId"`
	PccID        string    `json:"pccId"`
	Status       string    `json:"status"`
	Week         int       `json:"week"`
	Day          string    `json:"day"`

	StandardHours    float64 `json:"standardHours"`
	OnCallHours      float64 `json:"onCallHours"`
	WeekendHours     float64 `json:"weekendHours"`
	BankHolidayHours float64 `json:"bankHolidayHours"`
	HolidayHours     float64 `json:"holidayHours"`
	DoubleHours      float64 `json:"doubleHours"`
	TripleHours      float64 `json:"tripleHours"`
	DedhHours        float64 `json:"dedhHours"`
	TotalHours       float64 `json:"totalHours"`

	StandardPayRate     float64 `json:"standardPayRate"`
	StandardBillRate    float64 `json:"standardBillRate"`
	OnCallPayRate       float64 `json:"onCallPayRate"`
	OnCallBillRate      float64 `json:"onCallBillRate"`
	WeekendPayRate      float64 `json:"weekendPayRate"`
	WeekendBillRate     float64 `json:"weekendBillRate"`
	BankHolidayPayRate  float64 `json:"bankHolidayPayRate"`
	BankHolidayBillRate float64 `json:"bankHolidayBillRate"`
	DoublePayRate       float64 `json:"doublePayRate"`
	DoubleBillRate      float64 `json:"doubleBillRate"`
	TriplePayRate       float64 `json:"triplePayRate"`
	TripleBillRate      float64 `json:"tripleBillRate"`
	DedhPayRate         float64 `json:"dedhPayRate"`
	DedhBillRate        float64 `json:"dedhBillRate"`
}

type EntryInput struct {
	ContractorID string    `json:"contractorId"`
	WorkDate     time.Time `json:"workDate"`
	PccID        string    `json:"pccId"`
	Status       string    `json:"status"`
	Week         int       `json:"week"`
	Day          string    `json:"day"`

	StandardHours    *float64 `json:"standardHours,omitempty"`
	OnCallHours      *float64 `json:"onCallHours,omitempty"`
	WeekendHours     *float64 `json:"weekendHours,omitempty"`
	BankHolidayHours *float64 `json:"bankHolidayHours,omitempty"`
	HolidayHours     *float64 `json:"holidayHours,omitempty"`
	DoubleHours      *float64 `json:"doubleHours,omitempty"`
	TripleHours      *float64 `json:"tripleHours,omitempty"`
	DedhHours        *float64 `json:"dedhHours,omitempty"`

	// Optional snapshot corrections. When present they overwrite the stored
	// pay and bill rates; otherwise the snapshot captured at insert stands.
	StandardPayRate     *float64 `json:"standardPayRate,omitempty"`
	StandardBillRate    *float64 `json:"standardBillRate,omitempty"`
	OnCallPayRate       *float64 `json:"onCallPayRate,omitempty"`
	OnCallBillRate      *float64 `json:"onCallBillRate,omitempty"`
	WeekendPayRate      *float64 `json:"weekendPayRate,omitempty"`
	WeekendBillRate     *float64 `json:"weekendBillRate,omitempty"`
	BankHolidayPayRate  *float64 `json:"bankHolidayPayRate,omitempty"`
	BankHolidayBillRate *float64 `json:"bankHolidayBillRate,omitempty"`
	DoublePayRate       *float64 `json:"doublePayRate,omitempty"`
	DoubleBillRate      *float64 `json:"doubleBillRate,omitempty"`
	TriplePayRate       *float64 `json:"triplePayRate,omitempty"`
	TripleBillRate      *float64 `json:"tripleBillRate,omitempty"`
	DedhPayRate         *float64 `json:"dedhPayRate,omitempty"`
	DedhBillRate        *float64 `json:"dedhBillRate,omitempty"`

	RateHours []RateHourInput `json:"rateHours,omitempty"`
}

// RateHour is a per-rate breakdown row hanging off an entry.
type RateHour struct {
	TcrhID          int     `json:"tcrhId"`
	TchID           string  `json:"tchId"`
	RateTypeID      int     `json:"rateTypeId"`
	RateFrequencyID int     `json:"rateFrequencyId"`
	TcrID           int     `json:"tcrId"`
	Quantity        float64 `json:"quantity"`
	PayRate         float64 `json:"payRate"`
	BillRate        float64 `json:"billRate"`
}

type RateHourInput struct {
	RateTypeID      int     `json:"rateTypeId"`
	RateFrequencyID int     `json:"rateFrequencyId"`
	TcrID           int     `json:"tcrId"`
	Quantity        float64 `json:"quantity"`
	PayRate         float64 `json:"payRate"`
	BillRate        float64 `json:"billRate"`
}

type UpsertResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	TchIDs  []string `json:"tchIds"`
}
