package payroll

const (
	PeriodStatusDraft     = "draft"
	PeriodStatusCompleted = "completed"

	RunStatusPending  = "pending"
	RunStatusApproved = "approved"
	RunStatusPaid     = "paid"

	MaritalSingle  = "single"
	MaritalMarried = "married"
)

// Irish deduction tables, 2024 figures.
const prsiRate = 0.04

type band struct {
	lower float64
	upper float64 // 0 means no upper bound
	rate  float64
}

var payeBands = map[string][]band{
	MaritalSingle: {
		{0, 42000, 0.20},
		{42000, 0, 0.40},
	},
	MaritalMarried: {
		{0, 84000, 0.20},
		{84000, 0, 0.40},
	},
}

var uscBands = []band{
	{0, 12012, 0.005},
	{12012, 22020, 0.02},
	{22020, 70044, 0.045},
	{70044, 0, 0.08},
}
