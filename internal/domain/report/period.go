package report

import (
	"time"

	"prmetrics/internal/domain"
)

const dateLayout = "2006-01-02"

// Period is an inclusive calendar-day range. Start and End are UTC
// midnights of the first and last day.
type Period struct {
	Start time.Time
	End   time.Time
}

// ParsePeriod validates the two CLI date strings. Both must be YYYY-MM-DD
// and end must not precede start.
func ParsePeriod(startStr, endStr string) (Period, error) {
	start, err := time.ParseInLocation(dateLayout, startStr, time.UTC)
	if err != nil {
		return Period{}, domain.NewValidationError("invalid --start-date, want YYYY-MM-DD", err)
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.UTC)
	if err != nil {
		return Period{}, domain.NewValidationError("invalid --end-date, want YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return Period{}, domain.NewValidationError("--end-date is before --start-date", nil)
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) StartDate() string { return p.Start.Format(dateLayout) }
func (p Period) EndDate() string   { return p.End.Format(dateLayout) }
