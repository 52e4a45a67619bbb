package invoices

import "errors"

var (
	ErrNoHoursLogged    = errors.New("no hours logged for the selected week")
	ErrNoRatesAvailable = errors.New("no rates recorded for the logged hours")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrBadWeekFormat    = errors.New("week must be YYYY-Www or YYYY-MM-DD")
)
