package timetables

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TimetableRepository интерфейс репозитория расписаний
type TimetableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Timetable, error)
	GetWithFilter(ctx context.Context, filter domain.TimetableFilter) ([]*domain.Timetable, error)
	GetBySemester(ctx context.Context, semesterID int64) ([]*domain.Timetable, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TimetableStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
