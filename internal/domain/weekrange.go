package domain

import "time"

// WeekRange calendar bounds for UI range pickers: the Monday of the week
// containing the earliest study date and the Sunday of the week containing
// the latest. Advisory display data only, never gates a write.
type WeekRange struct {
	FirstWeekStart time.Time
	LastWeekEnd    time.Time
}

// DeriveWeekRange scans every study period of every timetable and snaps the
// minimum start down to Monday and the maximum end up to Sunday (ISO week,
// Monday-first). The second result is false when there are no periods.
func DeriveWeekRange(timetables []*Timetable) (WeekRange, bool) {
	var minDate, maxDate time.Time
	found := false

	for _, t := range timetables {
		for _, p := range t.StudyPeriods {
			if !found {
				minDate, maxDate = p.Start, p.End
				found = true
				continue
			}
			if p.Start.Before(minDate) {
				minDate = p.Start
			}
			if p.End.After(maxDate) {
				maxDate = p.End
			}
		}
	}

	if !found {
		return WeekRange{}, false
	}

	return WeekRange{
		FirstWeekStart: StartOfWeek(minDate),
		LastWeekEnd:    EndOfWeek(maxDate),
	}, true
}

// StartOfWeek returns the Monday of the week containing date.
func StartOfWeek(date time.Time) time.Time {
	d := DateOf(date)
	offset := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the Sunday of the week containing date.
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}
