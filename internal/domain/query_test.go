package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveOn_PeriodMembership(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 15/09/2025")

	assert.Len(t, ActiveOn([]*Timetable{tt}, mustDate(t, "01/09/2025")), 1)
	assert.Len(t, ActiveOn([]*Timetable{tt}, mustDate(t, "08/09/2025")), 1)
	// Right weekday, outside the period
	assert.Empty(t, ActiveOn([]*Timetable{tt}, mustDate(t, "22/09/2025")))
	// Inside the period, wrong weekday
	assert.Empty(t, ActiveOn([]*Timetable{tt}, mustDate(t, "02/09/2025")))
}

func TestActiveOn_CancellationRemovesDate(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 15/09/2025")
	tt.AddCancelDate(mustDate(t, "08/09/2025"))

	assert.Empty(t, ActiveOn([]*Timetable{tt}, mustDate(t, "08/09/2025")))
	assert.Len(t, ActiveOn([]*Timetable{tt}, mustDate(t, "01/09/2025")), 1)
}

func TestActiveBetween_PeriodOverlap(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 15/09/2025\n01/10/2025 - 15/10/2025")

	assert.Len(t, ActiveBetween([]*Timetable{tt}, mustDate(t, "10/09/2025"), mustDate(t, "20/09/2025")), 1)
	assert.Len(t, ActiveBetween([]*Timetable{tt}, mustDate(t, "20/09/2025"), mustDate(t, "05/10/2025")), 1)
	assert.Empty(t, ActiveBetween([]*Timetable{tt}, mustDate(t, "16/09/2025"), mustDate(t, "30/09/2025")))
}

func TestActiveBetween_IgnoresCancellations(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "08/09/2025")
	tt.AddCancelDate(mustDate(t, "08/09/2025"))

	// Window queries report the timetable even when its only date is cancelled
	result := ActiveBetween([]*Timetable{tt}, mustDate(t, "01/09/2025"), mustDate(t, "30/09/2025"))
	require.Len(t, result, 1)
}
