package update_timetable

import (
	"context"

	updateTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/update_timetable"
)

type UpdateTimetableUseCase interface {
	Execute(ctx context.Context, req *updateTimetable.Request) (*updateTimetable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
