package get_timetable

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

type TimetableService interface {
	GetByID(ctx context.Context, id int64) (*models.TimetableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
