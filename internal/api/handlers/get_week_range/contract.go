package get_week_range

import (
	"context"

	getWeekRange "github.com/m04kA/SMC-TimetableService/internal/usecase/get_week_range"
)

type GetWeekRangeUseCase interface {
	Execute(ctx context.Context, req *getWeekRange.Request) (*getWeekRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
