package lessontimes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	lessonTimeRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/lessontime"
	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes/models"
)

type fakeLessonTimeRepo struct {
	lessonTimes []*domain.LessonTime
}

func (f *fakeLessonTimeRepo) Create(_ context.Context, lt *domain.LessonTime) (*domain.LessonTime, error) {
	for _, existing := range f.lessonTimes {
		if existing.LessonNumber == lt.LessonNumber {
			return nil, lessonTimeRepo.ErrLessonNumberTaken
		}
	}
	lt.ID = int64(len(f.lessonTimes) + 1)
	f.lessonTimes = append(f.lessonTimes, lt)
	return lt, nil
}

func (f *fakeLessonTimeRepo) GetByNumber(_ context.Context, number int) (*domain.LessonTime, error) {
	for _, lt := range f.lessonTimes {
		if lt.LessonNumber == number {
			return lt, nil
		}
	}
	return nil, lessonTimeRepo.ErrLessonTimeNotFound
}

func (f *fakeLessonTimeRepo) List(_ context.Context) ([]*domain.LessonTime, error) {
	return f.lessonTimes, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateAndList(t *testing.T) {
	svc := NewService(&fakeLessonTimeRepo{}, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateLessonTimeRequest{
		LessonNumber: 1,
		StartTime:    "08:00",
		EndTime:      "09:35",
		Session:      "MORNING",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.LessonNumber)
	assert.Equal(t, "MORNING", created.Session)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.LessonTimes, 1)
}

func TestCreate_DuplicateNumber(t *testing.T) {
	repo := &fakeLessonTimeRepo{lessonTimes: []*domain.LessonTime{
		{ID: 1, LessonNumber: 1, StartTime: "08:00", EndTime: "09:35", Session: domain.SessionMorning},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateLessonTimeRequest{
		LessonNumber: 1,
		StartTime:    "08:00",
		EndTime:      "09:35",
		Session:      "MORNING",
	})
	require.ErrorIs(t, err, ErrLessonNumberTaken)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeLessonTimeRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  models.CreateLessonTimeRequest
	}{
		{"zero number", models.CreateLessonTimeRequest{LessonNumber: 0, StartTime: "08:00", EndTime: "09:35", Session: "MORNING"}},
		{"bad start time", models.CreateLessonTimeRequest{LessonNumber: 1, StartTime: "8am", EndTime: "09:35", Session: "MORNING"}},
		{"end before start", models.CreateLessonTimeRequest{LessonNumber: 1, StartTime: "10:00", EndTime: "09:35", Session: "MORNING"}},
		{"unknown session", models.CreateLessonTimeRequest{LessonNumber: 1, StartTime: "08:00", EndTime: "09:35", Session: "NIGHT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByNumber_NotFound(t *testing.T) {
	svc := NewService(&fakeLessonTimeRepo{}, nopLogger{})

	_, err := svc.GetByNumber(context.Background(), 9)
	require.ErrorIs(t, err, ErrLessonTimeNotFound)
}
