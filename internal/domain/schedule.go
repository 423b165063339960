package domain

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// Weekdays canonical configuration keys, Monday first.
// Keys are English regardless of the display locale and match time.Weekday.String().
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// IsWeekday returns true if name is a canonical weekday key (case-sensitive)
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// WorkDaySetting represents working hours for one weekday
type WorkDaySetting struct {
	Day       string
	IsOpen    bool
	StartTime types.TimeString
	EndTime   types.TimeString
	UpdatedAt time.Time
}

// WorkSchedule is the weekly working-hours configuration of the salon.
// A day without a setting is closed.
type WorkSchedule struct {
	days map[string]WorkDaySetting
}

// NewWorkSchedule builds a schedule from stored settings; later duplicates win
func NewWorkSchedule(settings []WorkDaySetting) *WorkSchedule {
	days := make(map[string]WorkDaySetting, len(settings))
	for _, s := range settings {
		days[s.Day] = s
	}
	return &WorkSchedule{days: days}
}

// Day returns the setting for a weekday key
func (s *WorkSchedule) Day(name string) (WorkDaySetting, bool) {
	if s == nil {
		return WorkDaySetting{}, false
	}
	setting, ok := s.days[name]
	return setting, ok
}

// Days returns all seven weekdays in canonical order, missing ones as closed
func (s *WorkSchedule) Days() []WorkDaySetting {
	result := make([]WorkDaySetting, 0, len(Weekdays))
	for _, name := range Weekdays {
		setting, ok := s.Day(name)
		if !ok {
			setting = WorkDaySetting{Day: name}
		}
		result = append(result, setting)
	}
	return result
}

// WorkWindow is the resolved working window of a single date
type WorkWindow struct {
	Open  bool
	Start time.Time
	End   time.Time
}

// Resolve returns the working window for date in date's location.
// Missing setting, a closed day or unparsable hours all resolve to a closed window.
func (s *WorkSchedule) Resolve(date time.Time) WorkWindow {
	setting, ok := s.Day(date.Weekday().String())
	if !ok || !setting.IsOpen {
		return WorkWindow{}
	}

	start, err := setting.StartTime.OnDate(date)
	if err != nil {
		return WorkWindow{}
	}
	end, err := setting.EndTime.OnDate(date)
	if err != nil {
		return WorkWindow{}
	}

	return WorkWindow{Open: true, Start: start, End: end}
}
