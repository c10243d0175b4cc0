package domain

import "time"

// ActiveOn returns the timetables actually in effect on date: right
// weekday, date inside some study period, not cancelled.
func ActiveOn(timetables []*Timetable, date time.Time) []*Timetable {
	d := DateOf(date)
	result := make([]*Timetable, 0)
	for _, t := range timetables {
		if t.IsActiveOn(d) {
			result = append(result, t)
		}
	}
	return result
}

// ActiveBetween returns the timetables with at least one study period
// intersecting [start, end]. Cancellations are deliberately ignored here:
// they matter for single-date queries, not for "does this timetable fall
// inside this window at all".
func ActiveBetween(timetables []*Timetable, start, end time.Time) []*Timetable {
	window := DateInterval{Start: DateOf(start), End: DateOf(end)}
	result := make([]*Timetable, 0)

	for _, t := range timetables {
		for _, p := range t.StudyPeriods {
			if p.Overlaps(window) {
				result = append(result, t)
				break
			}
		}
	}

	return result
}
