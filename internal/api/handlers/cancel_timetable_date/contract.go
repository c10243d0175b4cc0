package cancel_timetable_date

import (
	"context"

	cancelDate "github.com/m04kA/SMC-TimetableService/internal/usecase/cancel_date"
)

type CancelDateUseCase interface {
	Execute(ctx context.Context, req *cancelDate.Request) (*cancelDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
