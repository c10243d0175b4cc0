package get_lesson_times

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes/models"
)

type LessonTimeService interface {
	List(ctx context.Context) (*models.LessonTimeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
