package payroll

import "github.com/shopspring/decimal"

// PayeTax walks the progressive tax bands for the filer's marital status.
// Unknown statuses fall back to single.
func PayeTax(grossPay float64, maritalStatus string) float64 {
	bands, ok := payeBands[maritalStatus]
	if !ok {
		bands = payeBands[MaritalSingle]
	}
	return bandedTax(grossPay, bands)
}

func PRSI(grossPay float64) float64 {
	if grossPay <= 0 {
		return 0
	}
	amount := decimal.NewFromFloat(grossPay).Mul(decimal.NewFromFloat(prsiRate))
	result, _ := amount.Round(2).Float64()
	return result
}

func USC(grossPay float64) float64 {
	return bandedTax(grossPay, uscBands)
}

// Pension and other deductions are placeholders until schemes are
// configured per contractor; they always contribute zero.
func Pension(grossPay float64) float64 { return 0 }

func OtherDeductions(grossPay float64) float64 { return 0 }

type Deductions struct {
	Tax     float64 `json:"tax"`
	PRSI    float64 `json:"prsi"`
	USC     float64 `json:"usc"`
	Pension float64 `json:"pension"`
	Other   float64 `json:"other"`
	Total   float64 `json:"total"`
}

func CalculateDeductions(grossPay float64, maritalStatus string) Deductions {
	d := Deductions{
		Tax:     PayeTax(grossPay, maritalStatus),
		PRSI:    PRSI(grossPay),
		USC:     USC(grossPay),
		Pension: Pension(grossPay),
		Other:   OtherDeductions(grossPay),
	}
	total := decimal.NewFromFloat(d.Tax).
		Add(decimal.NewFromFloat(d.PRSI)).
		Add(decimal.NewFromFloat(d.USC)).
		Add(decimal.NewFromFloat(d.Pension)).
		Add(decimal.NewFromFloat(d.Other))
	d.Total, _ = total.Round(2).Float64()
	return d
}

// bandedTax taxes each band's slice of the gross at the band's rate: the
// amount falling in a band is min(remaining, upper-lower).
func bandedTax(grossPay float64, bands []band) float64 {
	if grossPay <= 0 {
		return 0
	}
	remaining := decimal.NewFromFloat(grossPay)
	total := decimal.Zero
	for _, b := range bands {
		if remaining.Sign() <= 0 {
			break
		}
		taxable := remaining
		if b.upper > 0 {
			width := decimal.NewFromFloat(b.upper - b.lower)
			if width.LessThan(taxable) {
				taxable = width
			}
		}
		total = total.Add(taxable.Mul(decimal.NewFromFloat(b.rate)))
		remaining = remaining.Sub(taxable)
	}
	result, _ := total.Round(2).Float64()
	return result
}
