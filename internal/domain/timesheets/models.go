package timesheets

import "time"

type Timesheet struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Month     string     `json:"month"`
	Week      string     `json:"week"`
	DateRange string     `json:"dateRange"`
	CreatedOn time.Time  `json:"createdOn"`
	UpdatedOn *time.Time `json:"updatedOn,omitempty"`
}

type Summary struct {
	Timesheet
	TotalEntries  int `json:"totalEntries"`
	FilledEntries int `json:"filledEntries"`
}

type Entry struct {
	ID               string     `json:"id"`
	TimesheetID      string     `json:"timesheetId"`
	EmployeeName     string     `json:"employeeName"`
	EmployeeCode     string     `json:"employeeCode"`
	ClientName       string     `json:"clientName"`
	Filled           bool       `json:"filled"`
	StandardHours    float64    `json:"standardHours"`
	Rate2Hours       float64    `json:"rate2Hours"`
	Rate3Hours       float64    `json:"rate3Hours"`
	Rate4Hours       float64    `json:"rate4Hours"`
	Rate5Hours       float64    `json:"rate5Hours"`
	Rate6Hours       float64    `json:"rate6Hours"`
	HolidayHours     float64    `json:"holidayHours"`
	BankHolidayHours float64    `json:"bankHolidayHours"`
	CreatedOn        time.Time  `json:"createdOn"`
	UpdatedOn        *time.Time `json:"updatedOn,omitempty"`
}

type Detail struct {
	Timesheet
	Entries []Entry `json:"entries"`
}

type EntryInput struct {
	EmployeeName     string   `json:"employeeName"`
	EmployeeCode     string   `json:"employeeCode"`
	ClientName       string   `json:"clientName"`
	Filled           *bool    `json:"filled,omitempty"`
	StandardHours    *float64 `json:"standardHours,omitempty"`
	Rate2Hours       *float64 `json:"rate2Hours,omitempty"`
	Rate3Hours       *float64 `json:"rate3Hours,omitempty"`
	Rate4Hours       *float64 `json:"rate4Hours,omitempty"`
	Rate5Hours       *float64 `json:"rate5Hours,omitempty"`
	Rate6Hours       *float64 `json:"rate6Hours,omitempty"`
	HolidayHours     *float64 `json:"holidayHours,omitempty"`
	BankHolidayHours *float64 `json:"bankHolidayHours,omitempty"`
}
