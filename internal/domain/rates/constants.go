package rates

const (
	RateTypeStandard    = 1
	RateTypeOnCall      = 2
	RateTypeWeekend     = 3
	RateTypeBankHoliday = 4
	RateTypeDouble      = 5
	RateTypeTriple      = 6
	RateTypeTimeAndHalf = 7

	RateFrequencyHourly = 1
	RateFrequencyDaily  = 2

	RelationshipStatusActive = 0
)

var RateTypeNames = map[int]string{
	RateTypeStandard:    "Standard",
	RateTypeOnCall:      "On-Call",
	RateTypeWeekend:     "Weekend",
	RateTypeBankHoliday: "Bank Holiday",
	RateTypeDouble:      "Double",
	RateTypeTriple:      "Triple",
	RateTypeTimeAndHalf: "Time-and-a-half",
}

var RateFrequencyNames = map[int]string{
	RateFrequencyHourly: "Hourly",
	RateFrequencyDaily:  "Daily",
}
