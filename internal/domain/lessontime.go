package domain

import "time"

// Session coarse part-of-day label of a lesson slot
type Session string

const (
	SessionMorning   Session = "MORNING"
	SessionAfternoon Session = "AFTERNOON"
	SessionEvening   Session = "EVENING"
)

// LessonTime represents one numbered teaching period within a day.
// Wall-clock times are informational, ordering and overlap math use
// LessonNumber only.
type LessonTime struct {
	ID           int64
	LessonNumber int
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Session      Session
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Order result of comparing two lesson numbers
type Order int

const (
	OrderBefore Order = -1
	OrderEqual  Order = 0
	OrderAfter  Order = 1
)

// LessonTimeCatalog is an in-memory lookup over the lesson-time reference
// table. Built once at setup, read-only afterwards.
type LessonTimeCatalog struct {
	byNumber map[int]*LessonTime
}

// NewLessonTimeCatalog builds a catalog from a list of lesson times.
func NewLessonTimeCatalog(lessonTimes []*LessonTime) *LessonTimeCatalog {
	byNumber := make(map[int]*LessonTime, len(lessonTimes))
	for _, lt := range lessonTimes {
		byNumber[lt.LessonNumber] = lt
	}
	return &LessonTimeCatalog{byNumber: byNumber}
}

// Resolve returns the lesson time with the given number.
func (c *LessonTimeCatalog) Resolve(number int) (*LessonTime, bool) {
	lt, ok := c.byNumber[number]
	return lt, ok
}

// CompareOrder orders two lesson numbers. Defined purely by number, in a
// well-formed catalog number order and wall-clock order agree.
func (c *LessonTimeCatalog) CompareOrder(a, b int) Order {
	switch {
	case a < b:
		return OrderBefore
	case a > b:
		return OrderAfter
	default:
		return OrderEqual
	}
}
