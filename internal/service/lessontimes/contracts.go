package lessontimes

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// LessonTimeRepository интерфейс справочника пар
type LessonTimeRepository interface {
	Create(ctx context.Context, lt *domain.LessonTime) (*domain.LessonTime, error)
	GetByNumber(ctx context.Context, number int) (*domain.LessonTime, error)
	List(ctx context.Context) ([]*domain.LessonTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
