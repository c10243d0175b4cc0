package create_timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	facilityClient "github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

type fakeTimetableRepo struct {
	existing   []*domain.Timetable
	nameExists bool

	created *domain.Timetable
}

func (f *fakeTimetableRepo) Create(_ context.Context, t *domain.Timetable) (*domain.Timetable, error) {
	t.ID = 42
	f.created = t
	return t, nil
}

func (f *fakeTimetableRepo) GetWithFilter(_ context.Context, _ domain.TimetableFilter) ([]*domain.Timetable, error) {
	return f.existing, nil
}

func (f *fakeTimetableRepo) ExistsByNameAndSemester(_ context.Context, _ string, _ int64) (bool, error) {
	return f.nameExists, nil
}

type fakeLessonTimeRepo struct {
	known []int
}

func (f *fakeLessonTimeRepo) List(_ context.Context) ([]*domain.LessonTime, error) {
	lessonTimes := make([]*domain.LessonTime, 0, len(f.known))
	for _, number := range f.known {
		lessonTimes = append(lessonTimes, &domain.LessonTime{LessonNumber: number})
	}
	return lessonTimes, nil
}

type fakeFacilityClient struct {
	rooms       map[string]*facilityClient.Room
	instructors map[int64]bool
}

func (f *fakeFacilityClient) GetRoomByName(_ context.Context, name string) (*facilityClient.Room, error) {
	room, ok := f.rooms[name]
	if !ok {
		return nil, facilityClient.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeFacilityClient) GetInstructor(_ context.Context, id int64) (*facilityClient.Instructor, error) {
	if !f.instructors[id] {
		return nil, facilityClient.ErrInstructorNotFound
	}
	return &facilityClient.Instructor{ID: id}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLocker struct {
	busy     bool
	unlocked []string
}

func (f *fakeLocker) Lock(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return !f.busy, nil
}

func (f *fakeLocker) Unlock(_ context.Context, key string) error {
	f.unlocked = append(f.unlocked, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeTimetableRepo, locker *fakeLocker) *UseCase {
	return NewUseCase(
		repo,
		&fakeLessonTimeRepo{known: []int{1, 2, 3, 4, 5, 6}},
		&fakeFacilityClient{
			rooms:       map[string]*facilityClient.Room{"LAB-101": {ID: 100, Name: "LAB-101"}},
			instructors: map[int64]bool{10: true},
		},
		fakeTxManager{},
		locker,
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		Name:         "CS101-TH1",
		SemesterID:   ptr.Ptr(int64(7)),
		DayOfWeek:    time.Monday,
		RoomName:     "LAB-101",
		InstructorID: 10,
		StartLesson:  1,
		EndLesson:    3,
		StudyTime:    "01/09/2025 - 29/09/2025",
	}
}

func existingTimetable(t *testing.T, startLesson, endLesson int, studyTime string) *domain.Timetable {
	t.Helper()
	periods, err := domain.ParseStudyPeriods(studyTime)
	require.NoError(t, err)
	return &domain.Timetable{
		ID:           1,
		Name:         "CS102-TH2",
		SemesterID:   ptr.Ptr(int64(7)),
		DayOfWeek:    time.Monday,
		RoomID:       100,
		RoomName:     "LAB-101",
		InstructorID: 11,
		StartLesson:  startLesson,
		EndLesson:    endLesson,
		StudyPeriods: periods,
		Status:       domain.StatusApproved,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeTimetableRepo{}
	locker := &fakeLocker{}
	uc := newTestUseCase(repo, locker)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(100), resp.RoomID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	require.NotNil(t, repo.created)
	assert.Len(t, locker.unlocked, 1)
}

func TestExecute_AutoApprove(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.AutoApprove = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
}

func TestExecute_Conflict(t *testing.T) {
	repo := &fakeTimetableRepo{
		existing: []*domain.Timetable{existingTimetable(t, 3, 5, "01/09/2025 - 29/09/2025")},
	}
	uc := newTestUseCase(repo, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTimetableConflict)

	// Конфликтующее расписание названо в тексте ошибки
	assert.Contains(t, err.Error(), "CS102-TH2")
	assert.Contains(t, err.Error(), "LAB-101")
	assert.Nil(t, repo.created)
}

func TestExecute_NoConflictOnDisjointLessons(t *testing.T) {
	repo := &fakeTimetableRepo{
		existing: []*domain.Timetable{existingTimetable(t, 4, 6, "01/09/2025 - 29/09/2025")},
	}
	uc := newTestUseCase(repo, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_InvalidLessonRange(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.StartLesson = 5
	req.EndLesson = 2

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidLessonRange)
}

func TestExecute_UnresolvableLessonNumber(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.EndLesson = 99

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidLessonRange)
}

func TestExecute_MalformedStudyTime(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.StudyTime = "2025/09/01-2025/09/10"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrMalformedStudyTime)
	assert.Contains(t, err.Error(), "2025/09/01")
}

func TestExecute_EmptyStudyTime(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.StudyTime = "  "

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEmptyStudyTime)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.RoomName = "LAB-999"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InstructorNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTimetableRepo{}, &fakeLocker{})

	req := validRequest()
	req.InstructorID = 999

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInstructorNotFound)
}

func TestExecute_NameTaken(t *testing.T) {
	repo := &fakeTimetableRepo{nameExists: true}
	uc := newTestUseCase(repo, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestExecute_LockBusy(t *testing.T) {
	repo := &fakeTimetableRepo{}
	uc := newTestUseCase(repo, &fakeLocker{busy: true})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrLockBusy)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelDates(t *testing.T) {
	repo := &fakeTimetableRepo{}
	uc := newTestUseCase(repo, &fakeLocker{})

	req := validRequest()
	req.CancelDates = []string{"08/09/2025"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.CancelDates, 1)

	req = validRequest()
	req.CancelDates = []string{"not a date"}
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrMalformedStudyTime)
}
