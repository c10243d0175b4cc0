package timetables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	timetableRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

type fakeTimetableRepo struct {
	timetables []*domain.Timetable

	lastFilter    domain.TimetableFilter
	updatedStatus domain.TimetableStatus
	deletedID     int64
}

func (f *fakeTimetableRepo) GetByID(_ context.Context, id int64) (*domain.Timetable, error) {
	for _, t := range f.timetables {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, timetableRepo.ErrTimetableNotFound
}

func (f *fakeTimetableRepo) GetWithFilter(_ context.Context, filter domain.TimetableFilter) ([]*domain.Timetable, error) {
	f.lastFilter = filter
	return f.timetables, nil
}

func (f *fakeTimetableRepo) GetBySemester(_ context.Context, _ int64) ([]*domain.Timetable, error) {
	return f.timetables, nil
}

func (f *fakeTimetableRepo) UpdateStatus(_ context.Context, id int64, status domain.TimetableStatus) error {
	if _, err := f.GetByID(context.Background(), id); err != nil {
		return err
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeTimetableRepo) Delete(_ context.Context, id int64) error {
	if _, err := f.GetByID(context.Background(), id); err != nil {
		return err
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTimetable(t *testing.T, id int64, studyTime string, status domain.TimetableStatus) *domain.Timetable {
	t.Helper()
	periods, err := domain.ParseStudyPeriods(studyTime)
	require.NoError(t, err)
	return &domain.Timetable{
		ID:           id,
		Name:         "CS101-TH1",
		DayOfWeek:    time.Monday,
		RoomID:       100,
		StartLesson:  1,
		EndLesson:    3,
		StudyPeriods: periods,
		Status:       status,
	}
}

func TestGetByDate_FiltersToActive(t *testing.T) {
	tt := testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusApproved)
	d, err := domain.ParseDate("08/09/2025")
	require.NoError(t, err)
	tt.AddCancelDate(d)

	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		tt,
		testTimetable(t, 2, "01/10/2025 - 29/10/2025", domain.StatusApproved), // вне периода
	}}
	svc := NewService(repo, nopLogger{})

	// 15/09/2025 - понедельник внутри периода первого расписания
	resp, err := svc.GetByDate(context.Background(), &models.GetByDateRequest{Date: "15/09/2025"})
	require.NoError(t, err)
	require.Len(t, resp.Timetables, 1)
	assert.Equal(t, int64(1), resp.Timetables[0].ID)

	// День недели пробрасывается в фильтр репозитория
	require.NotNil(t, repo.lastFilter.DayOfWeek)
	assert.Equal(t, time.Monday, *repo.lastFilter.DayOfWeek)

	// В отмененную дату занятие не отдается
	resp, err = svc.GetByDate(context.Background(), &models.GetByDateRequest{Date: "08/09/2025"})
	require.NoError(t, err)
	assert.Empty(t, resp.Timetables)
}

func TestGetByDate_InvalidDate(t *testing.T) {
	svc := NewService(&fakeTimetableRepo{}, nopLogger{})

	_, err := svc.GetByDate(context.Background(), &models.GetByDateRequest{Date: "2025-09-15"})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetByRange_WindowOverlap(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusApproved),
		testTimetable(t, 2, "01/11/2025 - 30/11/2025", domain.StatusApproved),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByRange(context.Background(), &models.GetByRangeRequest{
		StartDate: "20/09/2025",
		EndDate:   "10/10/2025",
	})
	require.NoError(t, err)
	require.Len(t, resp.Timetables, 1)
	assert.Equal(t, int64(1), resp.Timetables[0].ID)
}

func TestGetByRange_ActiveDates(t *testing.T) {
	tt := testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusApproved)
	d, err := domain.ParseDate("29/09/2025")
	require.NoError(t, err)
	tt.AddCancelDate(d)

	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{tt}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByRange(context.Background(), &models.GetByRangeRequest{
		StartDate: "20/09/2025",
		EndDate:   "10/10/2025",
	})
	require.NoError(t, err)
	require.Len(t, resp.Timetables, 1)

	// Понедельники внутри окна за вычетом отмененной даты
	assert.Equal(t, []string{"22/09/2025"}, resp.Timetables[0].ActiveDates)
}

func TestGetByRange_EndBeforeStart(t *testing.T) {
	svc := NewService(&fakeTimetableRepo{}, nopLogger{})

	_, err := svc.GetByRange(context.Background(), &models.GetByRangeRequest{
		StartDate: "10/10/2025",
		EndDate:   "20/09/2025",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ApprovePending(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)
}

func TestUpdateStatus_RejectPending(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "REJECTED"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	assert.Equal(t, domain.StatusRejected, repo.updatedStatus)
}

func TestUpdateStatus_DeniedTransition(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusRejected),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "APPROVED"})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "approved"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeTimetableRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "APPROVED"})
	require.ErrorIs(t, err, ErrTimetableNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeTimetableRepo{timetables: []*domain.Timetable{
		testTimetable(t, 1, "01/09/2025 - 29/09/2025", domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, int64(1), repo.deletedID)

	require.ErrorIs(t, svc.Delete(context.Background(), 99), ErrTimetableNotFound)
}
