package timetables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	timetableRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
	"github.com/m04kA/SMC-TimetableService/internal/service/timetables/models"
	"github.com/m04kA/SMC-TimetableService/pkg/ptr"
)

// Service сервис для чтения и сопровождения расписаний
type Service struct {
	timetableRepo TimetableRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(timetableRepo TimetableRepository, logger Logger) *Service {
	return &Service{
		timetableRepo: timetableRepo,
		logger:        logger,
	}
}

// GetByID получает расписание по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TimetableResponse, error) {
	s.logger.Info("GetByID: fetching timetable id=%d", id)

	tt, err := s.timetableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
			s.logger.Warn("GetByID: timetable id=%d not found", id)
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("GetByID: repository error for timetable id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimetable(tt), nil
}

// GetByDate получает расписания, реально идущие в указанную дату:
// правильный день недели, дата внутри учебного периода, занятие не отменено.
// Опционально сужает выборку до одной аудитории
func (s *Service) GetByDate(ctx context.Context, req *models.GetByDateRequest) (*models.TimetableListResponse, error) {
	s.logger.Info("GetByDate: fetching timetables for date=%s, room=%v", req.Date, req.RoomID)

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("GetByDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// Предфильтр по дню недели и аудитории делает репозиторий,
	// точную проверку активности на дату - домен
	filter := domain.TimetableFilter{
		RoomID:    req.RoomID,
		DayOfWeek: ptr.Ptr(date.Weekday()),
	}
	timetables, err := s.timetableRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	active := domain.ActiveOn(timetables, date)
	s.logger.Info("GetByDate: %d of %d timetables active on %s", len(active), len(timetables), req.Date)
	return models.FromDomainTimetableList(active), nil
}

// GetByRange получает расписания, хотя бы один учебный период которых
// пересекает окно [startDate, endDate]. Даты отмен здесь не учитываются
func (s *Service) GetByRange(ctx context.Context, req *models.GetByRangeRequest) (*models.TimetableListResponse, error) {
	s.logger.Info("GetByRange: fetching timetables for period=%s to %s, semester=%v",
		req.StartDate, req.EndDate, req.SemesterID)

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		s.logger.Warn("GetByRange: invalid start date %q", req.StartDate)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.StartDate)
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		s.logger.Warn("GetByRange: invalid end date %q", req.EndDate)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.EndDate)
	}
	if end.Before(start) {
		s.logger.Warn("GetByRange: end date %s before start date %s", req.EndDate, req.StartDate)
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	timetables, err := s.timetableRepo.GetWithFilter(ctx, domain.TimetableFilter{SemesterID: req.SemesterID})
	if err != nil {
		s.logger.Error("GetByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByRange - repository error: %v", ErrInternal, err)
	}

	inWindow := domain.ActiveBetween(timetables, start, end)
	s.logger.Info("GetByRange: %d of %d timetables fall into window", len(inWindow), len(timetables))

	// К каждому расписанию добавляем конкретные даты занятий внутри окна
	resp := models.FromDomainTimetableList(inWindow)
	window := domain.DateInterval{Start: start, End: end}
	for i, tt := range inWindow {
		dates := tt.ActiveDatesWithin(window)
		formatted := make([]string, 0, len(dates))
		for _, d := range dates {
			formatted = append(formatted, d.Format(domain.DateFormat))
		}
		resp.Timetables[i].ActiveDates = formatted
	}

	return resp, nil
}

// UpdateStatus переводит расписание в новый статус.
// Допустим только переход из PENDING в APPROVED или REJECTED
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.TimetableResponse, error) {
	s.logger.Info("UpdateStatus: updating timetable id=%d to status=%s", id, req.Status)

	newStatus, ok := domain.ParseTimetableStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for timetable id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	tt, err := s.timetableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
			s.logger.Warn("UpdateStatus: timetable id=%d not found", id)
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("UpdateStatus: repository error for timetable id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Переход валидирует домен
	switch newStatus {
	case domain.StatusApproved:
		err = tt.Approve()
	case domain.StatusRejected:
		err = tt.Reject()
	default:
		err = domain.ErrInvalidTransition
	}
	if err != nil {
		s.logger.Warn("UpdateStatus: transition %s -> %s denied for timetable id=%d", tt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, tt.Status, newStatus)
	}

	if err := s.timetableRepo.UpdateStatus(ctx, id, tt.Status); err != nil {
		if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("UpdateStatus: repository error for timetable id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: timetable id=%d moved to status=%s", id, tt.Status)
	return models.FromDomainTimetable(tt), nil
}

// Delete удаляет расписание
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting timetable id=%d", id)

	if err := s.timetableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
			s.logger.Warn("Delete: timetable id=%d not found", id)
			return ErrTimetableNotFound
		}
		s.logger.Error("Delete: repository error for timetable id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: timetable id=%d deleted", id)
	return nil
}
