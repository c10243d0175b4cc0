package domain

import "time"

// ConflictScope narrows a conflict scan.
//
// Room is always the binding resource. InstructorID, when set, additionally
// treats timetables led by that instructor as conflict candidates even in
// other rooms (instructor-level exclusivity is a caller choice, not a
// default). Rejected timetables stay in the scan unless ExcludeRejected is
// set: a rejected timetable may still represent a real prior claim that
// needs manual reconciliation.
type ConflictScope struct {
	SemesterID      *int64
	InstructorID    *int64
	ExcludeRejected bool
}

// FindConflicts returns the timetables in existing that collide with
// candidate: same room (or scoped instructor), same weekday, numerically
// overlapping lesson ranges, and at least one shared active date (study
// periods minus cancellations on both sides).
//
// Pure and deterministic, never errors; an empty result means no conflict.
// Self-conflict during updates is the caller's concern: pass an existing
// list that already omits the timetable being updated.
func FindConflicts(candidate *Timetable, existing []*Timetable, scope ConflictScope) []*Timetable {
	conflicts := make([]*Timetable, 0)

	for _, other := range existing {
		if scope.ExcludeRejected && other.Status == StatusRejected {
			continue
		}
		if scope.SemesterID != nil && !sameSemester(other.SemesterID, scope.SemesterID) {
			continue
		}
		if !sharesResource(candidate, other, scope) {
			continue
		}
		if other.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if !candidate.LessonRangeOverlaps(other) {
			continue
		}
		if hasActiveDateOverlap(candidate, other) {
			conflicts = append(conflicts, other)
		}
	}

	return conflicts
}

func sharesResource(candidate, other *Timetable, scope ConflictScope) bool {
	if other.RoomID == candidate.RoomID {
		return true
	}
	return scope.InstructorID != nil && other.InstructorID == *scope.InstructorID
}

func sameSemester(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

// hasActiveDateOverlap walks the cross-product of both period lists and
// looks for one date that is on the shared weekday and not cancelled by
// either side. Short-circuits on the first hit.
func hasActiveDateOverlap(a, b *Timetable) bool {
	for _, pa := range a.StudyPeriods {
		for _, pb := range b.StudyPeriods {
			inter, ok := pa.Intersect(pb)
			if !ok {
				continue
			}

			d, ok := inter.firstOnWeekday(a.DayOfWeek)
			if !ok {
				continue
			}
			for ; !d.After(inter.End); d = d.AddDate(0, 0, 7) {
				if !a.IsCancelledOn(d) && !b.IsCancelledOn(d) {
					return true
				}
			}
		}
	}
	return false
}

// ActiveDatesWithin lists the timetable's active dates inside the given
// window, in period order. Range queries use it to expand a recurring
// timetable into concrete calendar entries.
func (t *Timetable) ActiveDatesWithin(window DateInterval) []time.Time {
	dates := make([]time.Time, 0)
	for _, p := range t.StudyPeriods {
		inter, ok := p.Intersect(window)
		if !ok {
			continue
		}
		d, ok := inter.firstOnWeekday(t.DayOfWeek)
		if !ok {
			continue
		}
		for ; !d.After(inter.End); d = d.AddDate(0, 0, 7) {
			if !t.IsCancelledOn(d) {
				dates = append(dates, d)
			}
		}
	}
	return dates
}
