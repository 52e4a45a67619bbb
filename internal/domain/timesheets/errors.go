package timesheets

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrEntryNotFound     = errors.New("timesheet entry not found")
)
