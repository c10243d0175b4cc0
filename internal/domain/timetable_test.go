package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetable_ApproveTransitions(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	tt.Status = StatusPending

	require.NoError(t, tt.Approve())
	assert.Equal(t, StatusApproved, tt.Status)

	// Terminal: a second approve is an invalid transition
	err := tt.Approve()
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), string(StatusApproved))
}

func TestTimetable_RejectTransitions(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	tt.Status = StatusPending

	require.NoError(t, tt.Reject())
	assert.Equal(t, StatusRejected, tt.Status)

	assert.ErrorIs(t, tt.Reject(), ErrInvalidTransition)
	assert.ErrorIs(t, tt.Approve(), ErrInvalidTransition)
}

func TestTimetable_ApproveAfterReject(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	tt.Status = StatusRejected

	assert.ErrorIs(t, tt.Approve(), ErrInvalidTransition)
}

func TestTimetable_AddCancelDate(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")

	assert.True(t, tt.AddCancelDate(mustDate(t, "08/09/2025")))
	assert.False(t, tt.AddCancelDate(mustDate(t, "08/09/2025")))
	require.Len(t, tt.CancelDates, 1)

	// Dates outside the active set are tolerated as no-ops
	tt.AddCancelDate(mustDate(t, "25/12/2030"))
	assert.Len(t, tt.CancelDates, 2)
	assert.True(t, tt.IsCancelledOn(mustDate(t, "08/09/2025")))
	assert.False(t, tt.IsCancelledOn(mustDate(t, "15/09/2025")))
}

func TestTimetable_IsActiveOn(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 15/09/2025")
	tt.AddCancelDate(mustDate(t, "08/09/2025"))

	assert.True(t, tt.IsActiveOn(mustDate(t, "01/09/2025")))
	assert.False(t, tt.IsActiveOn(mustDate(t, "08/09/2025"))) // cancelled
	assert.False(t, tt.IsActiveOn(mustDate(t, "02/09/2025"))) // wrong weekday
	assert.False(t, tt.IsActiveOn(mustDate(t, "22/09/2025"))) // outside periods
}

func TestTimetable_TotalLessonDay(t *testing.T) {
	tt := testTimetable(t, 1, 100, 2, 5, "01/09/2025")
	assert.Equal(t, 4, tt.TotalLessonDay())
}

func TestParseTimetableStatus(t *testing.T) {
	status, ok := ParseTimetableStatus("APPROVED")
	require.True(t, ok)
	assert.Equal(t, StatusApproved, status)

	_, ok = ParseTimetableStatus("approved")
	assert.False(t, ok)

	_, ok = ParseTimetableStatus("DONE")
	assert.False(t, ok)
}
