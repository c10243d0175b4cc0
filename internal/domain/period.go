package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateInterval represents a closed date range [Start, End].
// A single date is stored as Start == End. Dates are normalized to
// midnight UTC, the time component carries no meaning.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls inside the interval (inclusive).
func (iv DateInterval) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// Overlaps reports whether two closed intervals share at least one date.
func (iv DateInterval) Overlaps(other DateInterval) bool {
	return !iv.End.Before(other.Start) && !other.End.Before(iv.Start)
}

// Intersect returns the shared part of two intervals.
func (iv DateInterval) Intersect(other DateInterval) (DateInterval, bool) {
	if !iv.Overlaps(other) {
		return DateInterval{}, false
	}
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	return DateInterval{Start: start, End: end}, true
}

// IsSingleDate reports whether the interval covers exactly one date.
func (iv DateInterval) IsSingleDate() bool {
	return iv.Start.Equal(iv.End)
}

// firstOnWeekday returns the earliest date inside the interval that falls
// on the given weekday.
func (iv DateInterval) firstOnWeekday(day time.Weekday) (time.Time, bool) {
	offset := (int(day) - int(iv.Start.Weekday()) + 7) % 7
	d := iv.Start.AddDate(0, 0, offset)
	if d.After(iv.End) {
		return time.Time{}, false
	}
	return d, true
}

// DateOf strips the time component, normalizing to midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a single dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedStudyTime, strings.TrimSpace(s))
	}
	return DateOf(t), nil
}

// ParseStudyPeriods parses the textual study-time format into an ordered
// interval list. Each line is either "dd/mm/yyyy - dd/mm/yyyy" or a single
// "dd/mm/yyyy" date (stored as a one-day interval). One bad token fails the
// whole input, there is no partial recovery.
//
// Example:
//
//	"02/09/2025 - 30/09/2025\n14/10/2025"
func ParseStudyPeriods(text string) ([]DateInterval, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	tokens := strings.Split(text, periodSeparator)
	periods := make([]DateInterval, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		dates := strings.Split(token, "-")
		switch len(dates) {
		case 1:
			date, err := ParseDate(dates[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedStudyTime, token)
			}
			periods = append(periods, DateInterval{Start: date, End: date})

		case 2:
			start, err := ParseDate(dates[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedStudyTime, token)
			}
			end, err := ParseDate(dates[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedStudyTime, token)
			}
			if start.After(end) {
				return nil, fmt.Errorf("%w: %q: start after end", ErrMalformedStudyTime, token)
			}
			periods = append(periods, DateInterval{Start: start, End: end})

		default:
			return nil, fmt.Errorf("%w: %q", ErrMalformedStudyTime, token)
		}
	}

	return periods, nil
}

// FormatStudyPeriods renders intervals back into the textual study-time
// format. Parsing the result reproduces the same interval list.
func FormatStudyPeriods(periods []DateInterval) string {
	tokens := make([]string, 0, len(periods))
	for _, p := range periods {
		if p.IsSingleDate() {
			tokens = append(tokens, p.Start.Format(DateFormat))
			continue
		}
		tokens = append(tokens, p.Start.Format(DateFormat)+" - "+p.End.Format(DateFormat))
	}
	return strings.Join(tokens, periodSeparator)
}
