package hours

// HolidayAccrualRate is the fraction of standard hours that accrues into the
// candidate's holiday balance.
const HolidayAccrualRate = 0.08

type rateKey struct {
	TypeID      int
	FrequencyID int
}

type RateHourUpdate struct {
	TcrhID int
	Input  RateHourInput
}

type RateHourDiff struct {
	Inserts []RateHourInput
	Updates []RateHourUpdate
	Deletes []int
}

// DiffRateHours reconciles the stored breakdown rows against the incoming
// set, keyed by (rate type, rate frequency). Matching keys are updated,
// new keys inserted, and stored keys absent from the incoming set are
// soft-deleted. A zero or negative incoming quantity is ignored: it neither
// creates a row nor deletes the stored one.
func DiffRateHours(existing []RateHour, incoming []RateHourInput) RateHourDiff {
	var diff RateHourDiff

	byKey := make(map[rateKey]RateHour, len(existing))
	for _, row := range existing {
		byKey[rateKey{row.RateTypeID, row.RateFrequencyID}] = row
	}

	seen := make(map[rateKey]bool, len(incoming))
	for _, input := range incoming {
		key := rateKey{input.RateTypeID, input.RateFrequencyID}
		seen[key] = true
		if input.Quantity <= 0 {
			continue
		}
		if row, ok := byKey[key]; ok {
			diff.Updates = append(diff.Updates, RateHourUpdate{TcrhID: row.TcrhID, Input: input})
		} else {
			diff.Inserts = append(diff.Inserts, input)
		}
	}

	for _, row := range existing {
		if !seen[rateKey{row.RateTypeID, row.RateFrequencyID}] {
			diff.Deletes = append(diff.Deletes, row.TcrhID)
		}
	}
	return diff
}

// ApplyScalars overwrites the entry's hour buckets and rate snapshots with
// the provided fields and recomputes the total. Omitted fields keep their
// stored value.
func ApplyScalars(entry Entry, input EntryInput) Entry {
	setIf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&entry.StandardHours, input.StandardHours)
	setIf(&entry.OnCallHours, input.OnCallHours)
	setIf(&entry.WeekendHours, input.WeekendHours)
	setIf(&entry.BankHolidayHours, input.BankHolidayHours)
	setIf(&entry.HolidayHours, input.HolidayHours)
	setIf(&entry.DoubleHours, input.DoubleHours)
	setIf(&entry.TripleHours, input.TripleHours)
	setIf(&entry.DedhHours, input.DedhHours)

	setIf(&entry.StandardPayRate, input.StandardPayRate)
	setIf(&entry.StandardBillRate, input.StandardBillRate)
	setIf(&entry.OnCallPayRate, input.OnCallPayRate)
	setIf(&entry.OnCallBillRate, input.OnCallBillRate)
	setIf(&entry.WeekendPayRate, input.WeekendPayRate)
	setIf(&entry.WeekendBillRate, input.WeekendBillRate)
	setIf(&entry.BankHolidayPayRate, input.BankHolidayPayRate)
	setIf(&entry.BankHolidayBillRate, input.BankHolidayBillRate)
	setIf(&entry.DoublePayRate, input.DoublePayRate)
	setIf(&entry.DoubleBillRate, input.DoubleBillRate)
	setIf(&entry.TriplePayRate, input.TriplePayRate)
	setIf(&entry.TripleBillRate, input.TripleBillRate)
	setIf(&entry.DedhPayRate, input.DedhPayRate)
	setIf(&entry.DedhBillRate, input.DedhBillRate)

	if input.Status != "" {
		entry.Status = input.Status
	}
	if input.Week != 0 {
		entry.Week = input.Week
	}
	if input.Day != "" {
		entry.Day = input.Day
	}

	entry.TotalHours = entry.StandardHours + entry.OnCallHours + entry.WeekendHours +
		entry.BankHolidayHours + entry.HolidayHours + entry.DoubleHours +
		entry.TripleHours + entry.DedhHours
	return entry
}

// HolidayBalance applies the accrual delta for an entry change: 8% of the
// standard-hour delta accrues, the holiday-hour delta is deducted, and the
// result never drops below zero. Working off deltas keeps re-logging the
// same hours from inflating the balance.
func HolidayBalance(balance, oldStandard, newStandard, oldHoliday, newHoliday float64) float64 {
	balance += HolidayAccrualRate * (newStandard - oldStandard)
	balance -= newHoliday - oldHoliday
	if balance < 0 {
		return 0
	}
	return balance
}
