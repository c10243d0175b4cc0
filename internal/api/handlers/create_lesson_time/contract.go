package create_lesson_time

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes/models"
)

type LessonTimeService interface {
	Create(ctx context.Context, req *models.CreateLessonTimeRequest) (*models.LessonTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
