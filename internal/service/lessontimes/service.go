package lessontimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	lessonTimeRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/lessontime"
	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes/models"
)

// Service сервис для работы со справочником пар
type Service struct {
	lessonTimeRepo LessonTimeRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса справочника пар
func NewService(lessonTimeRepo LessonTimeRepository, logger Logger) *Service {
	return &Service{
		lessonTimeRepo: lessonTimeRepo,
		logger:         logger,
	}
}

// List получает все слоты пар в порядке номеров
func (s *Service) List(ctx context.Context) (*models.LessonTimeListResponse, error) {
	s.logger.Info("List: fetching lesson times")

	lessonTimes, err := s.lessonTimeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLessonTimeList(lessonTimes), nil
}

// GetByNumber получает слот пары по номеру
func (s *Service) GetByNumber(ctx context.Context, number int) (*models.LessonTimeResponse, error) {
	s.logger.Info("GetByNumber: fetching lesson time number=%d", number)

	lt, err := s.lessonTimeRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, lessonTimeRepo.ErrLessonTimeNotFound) {
			s.logger.Warn("GetByNumber: lesson time number=%d not found", number)
			return nil, ErrLessonTimeNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%d: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLessonTime(lt), nil
}

// Create создает слот пары в справочнике
func (s *Service) Create(ctx context.Context, req *models.CreateLessonTimeRequest) (*models.LessonTimeResponse, error) {
	s.logger.Info("Create: creating lesson time number=%d %s-%s", req.LessonNumber, req.StartTime, req.EndTime)

	lt, err := toDomainLessonTime(req)
	if err != nil {
		s.logger.Warn("Create: invalid lesson time number=%d: %v", req.LessonNumber, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.lessonTimeRepo.Create(ctx, lt)
	if err != nil {
		if errors.Is(err, lessonTimeRepo.ErrLessonNumberTaken) {
			s.logger.Warn("Create: lesson number=%d already exists", req.LessonNumber)
			return nil, ErrLessonNumberTaken
		}
		s.logger.Error("Create: repository error for number=%d: %v", req.LessonNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: lesson time id=%d number=%d created", created.ID, created.LessonNumber)
	return models.FromDomainLessonTime(created), nil
}

// toDomainLessonTime валидирует запрос и собирает domain модель
func toDomainLessonTime(req *models.CreateLessonTimeRequest) (*domain.LessonTime, error) {
	if req.LessonNumber <= 0 {
		return nil, errors.New("lesson number must be positive")
	}

	start, err := time.Parse(domain.TimeFormat, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", req.StartTime)
	}
	end, err := time.Parse(domain.TimeFormat, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q", req.EndTime)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end time %q not after start time %q", req.EndTime, req.StartTime)
	}

	session := domain.Session(req.Session)
	switch session {
	case domain.SessionMorning, domain.SessionAfternoon, domain.SessionEvening:
	default:
		return nil, fmt.Errorf("unknown session %q", req.Session)
	}

	return &domain.LessonTime{
		LessonNumber: req.LessonNumber,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Session:      session,
	}, nil
}
