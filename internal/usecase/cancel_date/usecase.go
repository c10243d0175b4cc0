package cancel_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
)

// UseCase добавляет дату отмены занятия к расписанию
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

// Execute отменяет занятие расписания на указанную дату.
// Повторная отмена той же даты и дата вне учебных периодов не считаются
// ошибкой: список дат отмен просто не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.TimetableID <= 0 {
		return nil, fmt.Errorf("%w: timetable id must be positive", ErrInvalidInput)
	}

	// 2. Парсим дату отмены
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CancelDate: malformed date %q for timetable %d", req.Date, req.TimetableID)
		return nil, fmt.Errorf("%w: %q", ErrMalformedDate, req.Date)
	}

	// 3. Загружаем расписание
	tt, err := uc.timetableRepo.GetByID(ctx, req.TimetableID)
	if err != nil {
		if errors.Is(err, timetable.ErrTimetableNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrTimetableNotFound, req.TimetableID)
		}
		uc.logger.Error("CancelDate: failed to load timetable %d: %v", req.TimetableID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Добавляем дату отмены и сохраняем список
	added := tt.AddCancelDate(date)
	if added {
		if err := uc.timetableRepo.UpdateCancelDates(ctx, tt.ID, tt.CancelDates); err != nil {
			uc.logger.Error("CancelDate: failed to persist cancel dates for timetable %d: %v", tt.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.logger.Info("CancelDate: timetable %d cancelled on %s", tt.ID, req.Date)
	} else {
		uc.logger.Info("CancelDate: timetable %d already cancelled on %s, no-op", tt.ID, req.Date)
	}

	return &Response{
		TimetableID: tt.ID,
		CancelDates: tt.CancelDates,
		UpdatedAt:   tt.UpdatedAt,
	}, nil
}
