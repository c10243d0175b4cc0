package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

// 01/09/2025 is a Monday
func testTimetable(t *testing.T, id int64, roomID int64, startLesson, endLesson int, studyTime string) *Timetable {
	t.Helper()
	periods, err := ParseStudyPeriods(studyTime)
	require.NoError(t, err)

	return &Timetable{
		ID:           id,
		DayOfWeek:    time.Monday,
		RoomID:       roomID,
		InstructorID: 10,
		StartLesson:  startLesson,
		EndLesson:    endLesson,
		StudyPeriods: periods,
		Status:       StatusApproved,
	}
}

func TestFindConflicts_SharedLesson(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate := testTimetable(t, 2, 100, 3, 5, "01/09/2025 - 29/09/2025")

	conflicts := FindConflicts(candidate, []*Timetable{existing}, ConflictScope{})
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].ID)
}

func TestFindConflicts_DisjointLessonRanges(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate := testTimetable(t, 2, 100, 4, 6, "01/09/2025 - 29/09/2025")

	conflicts := FindConflicts(candidate, []*Timetable{existing}, ConflictScope{})
	assert.Empty(t, conflicts)
}

func TestFindConflicts_AdjacentLessonsConflict(t *testing.T) {
	// Closed-interval semantics: A ends at lesson 3, B starts at lesson 3
	a := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	b := testTimetable(t, 2, 100, 3, 6, "01/09/2025 - 29/09/2025")

	assert.Len(t, FindConflicts(b, []*Timetable{a}, ConflictScope{}), 1)
}

func TestFindConflicts_DifferentRoom(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate := testTimetable(t, 2, 200, 1, 3, "01/09/2025 - 29/09/2025")

	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
}

func TestFindConflicts_DifferentWeekday(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate := testTimetable(t, 2, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate.DayOfWeek = time.Tuesday

	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
}

func TestFindConflicts_DisjointPeriods(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 15/09/2025")
	candidate := testTimetable(t, 2, 100, 1, 3, "22/09/2025 - 29/09/2025")

	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
}

func TestFindConflicts_Symmetric(t *testing.T) {
	a := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	b := testTimetable(t, 2, 100, 2, 4, "08/09/2025 - 06/10/2025")

	ab := FindConflicts(a, []*Timetable{b}, ConflictScope{})
	ba := FindConflicts(b, []*Timetable{a}, ConflictScope{})
	assert.Equal(t, len(ab) > 0, len(ba) > 0)
	assert.NotEmpty(t, ab)
}

func TestFindConflicts_ExcludedSelfNeverReported(t *testing.T) {
	a := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	others := []*Timetable{
		testTimetable(t, 2, 100, 5, 6, "01/09/2025 - 29/09/2025"),
	}

	// existing list already omits the timetable being updated
	for _, c := range FindConflicts(a, others, ConflictScope{}) {
		assert.NotEqual(t, a.ID, c.ID)
	}
}

func TestFindConflicts_CancellationRemovesOnlySharedDate(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	// Candidate meets the existing timetable on a single Monday
	candidate := testTimetable(t, 2, 100, 1, 3, "08/09/2025")

	require.Len(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}), 1)

	existing.AddCancelDate(mustDate(t, "08/09/2025"))
	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
}

func TestFindConflicts_WeekdayNeverOccursInOverlap(t *testing.T) {
	// Periods overlap on 02/09-03/09 only, which contains no Monday
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 03/09/2025")
	candidate := testTimetable(t, 2, 100, 1, 3, "02/09/2025 - 07/09/2025")

	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
}

func TestFindConflicts_RejectedIncludedByDefault(t *testing.T) {
	rejected := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	rejected.Status = StatusRejected
	candidate := testTimetable(t, 2, 100, 1, 3, "01/09/2025 - 29/09/2025")

	assert.Len(t, FindConflicts(candidate, []*Timetable{rejected}, ConflictScope{}), 1)
	assert.Empty(t, FindConflicts(candidate, []*Timetable{rejected}, ConflictScope{ExcludeRejected: true}))
}

func TestFindConflicts_SemesterScope(t *testing.T) {
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	existing.SemesterID = ptr.Ptr(int64(7))
	candidate := testTimetable(t, 2, 100, 1, 3, "01/09/2025 - 29/09/2025")

	assert.Len(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{SemesterID: ptr.Ptr(int64(7))}), 1)
	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{SemesterID: ptr.Ptr(int64(8))}))
}

func TestFindConflicts_InstructorSecondaryFilter(t *testing.T) {
	// Same instructor, different room: only conflicts when the caller opts in
	existing := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	candidate := testTimetable(t, 2, 200, 1, 3, "01/09/2025 - 29/09/2025")

	assert.Empty(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{}))
	assert.Len(t, FindConflicts(candidate, []*Timetable{existing}, ConflictScope{InstructorID: ptr.Ptr(int64(10))}), 1)
}

func TestActiveDatesWithin(t *testing.T) {
	tt := testTimetable(t, 1, 100, 1, 3, "01/09/2025 - 29/09/2025")
	tt.AddCancelDate(mustDate(t, "15/09/2025"))

	window := DateInterval{Start: mustDate(t, "01/09/2025"), End: mustDate(t, "30/09/2025")}
	dates := tt.ActiveDatesWithin(window)

	require.Len(t, dates, 4)
	assert.Equal(t, mustDate(t, "01/09/2025"), dates[0])
	assert.Equal(t, mustDate(t, "08/09/2025"), dates[1])
	assert.Equal(t, mustDate(t, "22/09/2025"), dates[2])
	assert.Equal(t, mustDate(t, "29/09/2025"), dates[3])
}
