package invoices

const (
	StatusDraft = "Draft"

	// CounterUseSales keys the m_constant row holding the next invoice
	// number to issue.
	CounterUseSales = "Sales"

	counterSeedNext   = "1200001"
	counterSeedIssued = "1200000"
)
