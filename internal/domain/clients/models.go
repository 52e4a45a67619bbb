package clients

import "time"

type Client struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	ContactName string     `json:"contactName"`
	Address     string     `json:"address"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type Candidate struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	EmployeeID   string  `json:"employeeId"`
	HolidayCount float64 `json:"holidayCount"`
}

type CostCenter struct {
	ID      string `json:"id"`
	ClientID string `json:"clientId"`
	Name    string `json:"name"`
	Number  string `json:"number"`
	Address string `json:"address"`
}
