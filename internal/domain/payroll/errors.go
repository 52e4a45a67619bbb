package payroll

import "errors"

var (
	ErrPeriodNotFound = errors.New("payroll period not found")
	ErrPeriodDates    = errors.New("period end date must not be before the start date")
)
