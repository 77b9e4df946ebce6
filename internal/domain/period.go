package domain

import "time"

// InitialPeriodLabel keys the archive produced by the very first close, when
// no period has been closed before.
const InitialPeriodLabel = "initial"

// PeriodLabelFormat is the year-month layout used for period labels.
const PeriodLabelFormat = "2006-01"

// PeriodLabel returns the calendar period label (YYYY-MM, UTC) for t.
// Labels are compared by exact string equality to detect a period boundary.
func PeriodLabel(t time.Time) string {
	return t.UTC().Format(PeriodLabelFormat)
}
