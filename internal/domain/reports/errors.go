package reports

import "errors"

var (
	ErrReportNotFound = errors.New("payroll report not found")
	ErrReportNoFile   = errors.New("payroll report has no generated file")
)
