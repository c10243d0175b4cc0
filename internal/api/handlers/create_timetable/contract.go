package create_timetable

import (
	"context"

	createTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/create_timetable"
)

type CreateTimetableUseCase interface {
	Execute(ctx context.Context, req *createTimetable.Request) (*createTimetable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
