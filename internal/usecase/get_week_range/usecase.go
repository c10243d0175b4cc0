package get_week_range

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// UseCase выводит календарные границы учебных недель семестра
type UseCase struct {
	timetableRepo TimetableRepository
	logger        Logger
}

func NewUseCase(timetableRepo TimetableRepository, logger Logger) *UseCase {
	return &UseCase{
		timetableRepo: timetableRepo,
		logger:        logger,
	}
}

// Execute собирает все расписания семестра (включая отклоненные: заявка
// с периодами тоже растягивает календарь) и выводит понедельник первой
// и воскресенье последней учебной недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SemesterID <= 0 {
		return nil, fmt.Errorf("%w: semester id must be positive", ErrInvalidInput)
	}

	// 2. Загружаем расписания семестра
	timetables, err := uc.timetableRepo.GetBySemester(ctx, req.SemesterID)
	if err != nil {
		uc.logger.Error("GetWeekRange: failed to load timetables for semester %d: %v", req.SemesterID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Сводим все периоды к границам недель
	wr, ok := domain.DeriveWeekRange(timetables)
	if !ok {
		return nil, fmt.Errorf("%w: semester %d", ErrNoStudyPeriods, req.SemesterID)
	}

	return &Response{
		FirstWeekStart: wr.FirstWeekStart,
		LastWeekEnd:    wr.LastWeekEnd,
	}, nil
}
