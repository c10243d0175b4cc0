package get_timetables_by_range

import (
	"context"

	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
)

type TimetableService interface {
	GetByRange(ctx context.Context, req *models.GetByRangeRequest) (*models.TimetableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
