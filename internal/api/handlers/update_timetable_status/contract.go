package update_timetable_status

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

type TimetableService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.TimetableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
