package cancel_date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	timetableRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
)

type fakeTimetableRepo struct {
	timetable *domain.Timetable

	updatedDates []time.Time
	updateCalled bool
}

func (f *fakeTimetableRepo) GetByID(_ context.Context, id int64) (*domain.Timetable, error) {
	if f.timetable == nil || f.timetable.ID != id {
		return nil, timetableRepo.ErrTimetableNotFound
	}
	return f.timetable, nil
}

func (f *fakeTimetableRepo) UpdateCancelDates(_ context.Context, _ int64, cancelDates []time.Time) error {
	f.updateCalled = true
	f.updatedDates = cancelDates
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTimetable(t *testing.T) *domain.Timetable {
	t.Helper()
	periods, err := domain.ParseStudyPeriods("01/09/2025 - 29/09/2025")
	require.NoError(t, err)
	return &domain.Timetable{
		ID:           1,
		DayOfWeek:    time.Monday,
		StartLesson:  1,
		EndLesson:    3,
		StudyPeriods: periods,
		Status:       domain.StatusApproved,
	}
}

func TestExecute_AddsCancelDate(t *testing.T) {
	repo := &fakeTimetableRepo{timetable: testTimetable(t)}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TimetableID: 1, Date: "08/09/2025"})
	require.NoError(t, err)

	assert.True(t, repo.updateCalled)
	require.Len(t, resp.CancelDates, 1)
	d, err := domain.ParseDate("08/09/2025")
	require.NoError(t, err)
	assert.True(t, resp.CancelDates[0].Equal(d))
}

func TestExecute_DuplicateDateIsNoOp(t *testing.T) {
	tt := testTimetable(t)
	d, err := domain.ParseDate("08/09/2025")
	require.NoError(t, err)
	tt.AddCancelDate(d)

	repo := &fakeTimetableRepo{timetable: tt}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TimetableID: 1, Date: "08/09/2025"})
	require.NoError(t, err)

	assert.False(t, repo.updateCalled)
	assert.Len(t, resp.CancelDates, 1)
}

func TestExecute_DateOutsidePeriodsTolerated(t *testing.T) {
	repo := &fakeTimetableRepo{timetable: testTimetable(t)}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TimetableID: 1, Date: "25/12/2030"})
	require.NoError(t, err)
	assert.Len(t, resp.CancelDates, 1)
}

func TestExecute_MalformedDate(t *testing.T) {
	uc := NewUseCase(&fakeTimetableRepo{timetable: testTimetable(t)}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TimetableID: 1, Date: "2025-09-08"})
	require.ErrorIs(t, err, ErrMalformedDate)
}

func TestExecute_TimetableNotFound(t *testing.T) {
	uc := NewUseCase(&fakeTimetableRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TimetableID: 99, Date: "08/09/2025"})
	require.ErrorIs(t, err, ErrTimetableNotFound)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(&fakeTimetableRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TimetableID: 0, Date: "08/09/2025"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
