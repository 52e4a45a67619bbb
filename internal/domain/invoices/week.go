package invoices

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week is a billing week resolved from user input. Start is always a
// Monday; invoicing bills the hours logged on the Friday (BillingDate).
type Week struct {
	Start       time.Time
	End         time.Time
	BillingDate time.Time
}

// ResolveWeek accepts either an ISO week ("2025-W03") or any date inside
// the week ("2025-01-15"). ISO weeks are anchored on January 4th, which by
// definition falls in week 1.
func ResolveWeek(value string) (Week, error) {
	value = strings.TrimSpace(value)

	var monday time.Time
	if strings.Contains(value, "-W") {
		parts := strings.SplitN(value, "-W", 2)
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return Week{}, fmt.Errorf("%w: %q", ErrBadWeekFormat, value)
		}
		weekNum, err := strconv.Atoi(parts[1])
		if err != nil || weekNum < 1 || weekNum > 53 {
			return Week{}, fmt.Errorf("%w: %q", ErrBadWeekFormat, value)
		}
		jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
		week1Monday := startOfWeek(jan4)
		monday = week1Monday.AddDate(0, 0, (weekNum-1)*7)
	} else {
		day, err := time.Parse("2006-01-02", value)
		if err != nil {
			return Week{}, fmt.Errorf("%w: %q", ErrBadWeekFormat, value)
		}
		monday = startOfWeek(day)
	}

	return Week{
		Start:       monday,
		End:         monday.AddDate(0, 0, 6),
		BillingDate: monday.AddDate(0, 0, 4),
	}, nil
}

func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
