package domain

import "time"

// BusyIntervalSource identifies where a busy interval came from
type BusyIntervalSource string

const (
	BusySourceCalendar    BusyIntervalSource = "calendar"
	BusySourceAppointment BusyIntervalSource = "appointment"
)

// BusyInterval is a half-open [Start, End) range during which no appointment may run
type BusyInterval struct {
	Start  time.Time
	End    time.Time
	Source BusyIntervalSource
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsAny reports whether [start, end) intersects any of intervals
func OverlapsAny(start, end time.Time, intervals []BusyInterval) bool {
	for _, iv := range intervals {
		if Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}

// StartOfDay returns midnight of t's date in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
