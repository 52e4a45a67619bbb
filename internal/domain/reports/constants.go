package reports

const (
	StatusDraft      = "draft"
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Flat deduction rates used by the report. The payroll calculator applies
// the full banded tables; the report intentionally re-derives its figures
// with these flat rates, so the two surfaces can disagree.
const (
	flatTaxRate  = 0.20
	flatPRSIRate = 0.04
	flatUSCRate  = 0.02
)
