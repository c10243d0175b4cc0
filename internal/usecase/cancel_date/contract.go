package cancel_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// TimetableRepository интерфейс репозитория расписаний
type TimetableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Timetable, error)
	UpdateCancelDates(ctx context.Context, id int64, cancelDates []time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
