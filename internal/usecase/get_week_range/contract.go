package get_week_range

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TimetableRepository интерфейс репозитория расписаний
type TimetableRepository interface {
	GetBySemester(ctx context.Context, semesterID int64) ([]*domain.Timetable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
