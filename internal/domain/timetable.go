package domain

import (
	"fmt"
	"time"
)

// TimetableStatus represents the approval status of a timetable
type TimetableStatus string

const (
	StatusPending  TimetableStatus = "PENDING"
	StatusApproved TimetableStatus = "APPROVED"
	StatusRejected TimetableStatus = "REJECTED"
)

// allowedTransitions closed transition table: both approve and reject are
// terminal, nothing leaves APPROVED or REJECTED
var allowedTransitions = map[TimetableStatus]map[TimetableStatus]bool{
	StatusPending: {
		StatusApproved: true,
		StatusRejected: true,
	},
}

// ParseTimetableStatus validates a status string against the known set.
func ParseTimetableStatus(s string) (TimetableStatus, bool) {
	switch TimetableStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return TimetableStatus(s), true
	}
	return "", false
}

// Timetable represents one recurring room/instructor booking: it recurs on
// DayOfWeek within each of its study periods, occupying lessons
// [StartLesson, EndLesson], except on explicitly cancelled dates.
type Timetable struct {
	ID           int64
	Name         string
	SemesterID   *int64
	DayOfWeek    time.Weekday
	RoomID       int64
	RoomName     string
	InstructorID int64
	ClassID      string
	StartLesson  int
	EndLesson    int

	StudyPeriods []DateInterval
	CancelDates  []time.Time

	NumberOfStudents int
	Status           TimetableStatus
	Description      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalLessonDay returns the number of lessons the timetable occupies per day.
func (t *Timetable) TotalLessonDay() int {
	return t.EndLesson - t.StartLesson + 1
}

// Approve transitions PENDING -> APPROVED.
func (t *Timetable) Approve() error {
	return t.transition(StatusApproved)
}

// Reject transitions PENDING -> REJECTED.
func (t *Timetable) Reject() error {
	return t.transition(StatusRejected)
}

func (t *Timetable) transition(to TimetableStatus) error {
	if !allowedTransitions[t.Status][to] {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}
	t.Status = to
	return nil
}

// AddCancelDate appends a cancellation date and reports whether the set
// changed. Dates outside the timetable's active set are accepted as harmless,
// they never match a query anyway. Keeps re-imports of cancellation feeds
// idempotent.
func (t *Timetable) AddCancelDate(date time.Time) bool {
	d := DateOf(date)
	if t.IsCancelledOn(d) {
		return false
	}
	t.CancelDates = append(t.CancelDates, d)
	return true
}

// IsCancelledOn reports whether date is in the cancel-date set.
func (t *Timetable) IsCancelledOn(date time.Time) bool {
	d := DateOf(date)
	for _, c := range t.CancelDates {
		if c.Equal(d) {
			return true
		}
	}
	return false
}

// InPeriodOn reports whether date falls inside any study period.
func (t *Timetable) InPeriodOn(date time.Time) bool {
	for _, p := range t.StudyPeriods {
		if p.Contains(date) {
			return true
		}
	}
	return false
}

// IsActiveOn reports whether the timetable is actually in effect on date:
// right weekday, inside some period, not cancelled.
func (t *Timetable) IsActiveOn(date time.Time) bool {
	d := DateOf(date)
	if d.Weekday() != t.DayOfWeek {
		return false
	}
	return t.InPeriodOn(d) && !t.IsCancelledOn(d)
}

// LessonRangeOverlaps reports whether two closed lesson ranges overlap.
// Touching ranges count: there is no buffer between adjacent lesson numbers.
func (t *Timetable) LessonRangeOverlaps(other *Timetable) bool {
	return t.StartLesson <= other.EndLesson && other.StartLesson <= t.EndLesson
}

// TimetableFilter фильтр для выборки расписаний
type TimetableFilter struct {
	RoomID          *int64        // Фильтр по аудитории (опционально)
	DayOfWeek       *time.Weekday // Фильтр по дню недели (опционально)
	SemesterID      *int64        // Фильтр по семестру (опционально)
	InstructorID    *int64        // Фильтр по преподавателю (опционально)
	IncludeRejected bool          // Включать ли отклоненные расписания
}
