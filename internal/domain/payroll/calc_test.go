package payroll

import "testing"

func TestPayeTaxSingleBandBoundary(t *testing.T) {
	// Exactly at the band edge nothing falls into the 40% band.
	if got := PayeTax(42000, MaritalSingle); got != 8400.00 {
		t.Fatalf("expected 8400.00 for 42000 single, got %v", got)
	}
}

func TestPayeTaxSingleAboveBand(t *testing.T) {
	// 42000 at 20% plus 8000 at 40%.
	if got := PayeTax(50000, MaritalSingle); got != 11600.00 {
		t.Fatalf("expected 11600.00 for 50000 single, got %v", got)
	}
}

func TestPayeTaxMarriedWiderBand(t *testing.T) {
	if got := PayeTax(84000, MaritalMarried); got != 16800.00 {
		t.Fatalf("expected 16800.00 for 84000 married, got %v", got)
	}
	if got := PayeTax(100000, MaritalMarried); got != 23200.00 {
		t.Fatalf("expected 23200.00 for 100000 married, got %v", got)
	}
}

func TestPayeTaxUnknownStatusFallsBackToSingle(t *testing.T) {
	if got := PayeTax(50000, "divorced"); got != 11600.00 {
		t.Fatalf("expected single-band 11600.00, got %v", got)
	}
}

func TestPayeTaxZeroAndNegative(t *testing.T) {
	if got := PayeTax(0, MaritalSingle); got != 0 {
		t.Fatalf("expected 0 for zero gross, got %v", got)
	}
	if got := PayeTax(-100, MaritalSingle); got != 0 {
		t.Fatalf("expected 0 for negative gross, got %v", got)
	}
}

func TestPRSIFlatRate(t *testing.T) {
	if got := PRSI(1000); got != 40.00 {
		t.Fatalf("expected 40.00, got %v", got)
	}
	if got := PRSI(50000); got != 2000.00 {
		t.Fatalf("expected 2000.00, got %v", got)
	}
}

func TestUSCFirstBandBoundary(t *testing.T) {
	if got := USC(12012); got != 60.06 {
		t.Fatalf("expected 60.06 for 12012, got %v", got)
	}
}

func TestUSCAllBands(t *testing.T) {
	// 12012 at 0.5% + 10008 at 2% + 48024 at 4.5% + 29956 at 8%.
	if got := USC(100000); got != 4817.78 {
		t.Fatalf("expected 4817.78 for 100000, got %v", got)
	}
}

func TestCalculateDeductionsTotals(t *testing.T) {
	d := CalculateDeductions(50000, MaritalSingle)
	if d.Tax != 11600.00 {
		t.Fatalf("expected tax 11600.00, got %v", d.Tax)
	}
	if d.PRSI != 2000.00 {
		t.Fatalf("expected PRSI 2000.00, got %v", d.PRSI)
	}
	if d.Pension != 0 || d.Other != 0 {
		t.Fatalf("pension and other must be zero, got %v and %v", d.Pension, d.Other)
	}
	want := d.Tax + d.PRSI + d.USC
	if d.Total != want {
		t.Fatalf("expected total %v, got %v", want, d.Total)
	}
}
