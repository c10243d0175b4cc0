package update_timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	timetableRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/timetable"
	facilityClient "github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
)

// Время жизни блокировки области (аудитория, день недели, семестр)
const lockTTL = 10 * time.Second

// UseCase use case для обновления расписания с повторной проверкой конфликтов
type UseCase struct {
	timetableRepo  TimetableRepository
	lessonTimeRepo LessonTimeRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	locker         Locker
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timetableRepo TimetableRepository,
	lessonTimeRepo LessonTimeRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	locker Locker,
	logger Logger,
) *UseCase {
	return &UseCase{
		timetableRepo:  timetableRepo,
		lessonTimeRepo: lessonTimeRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		locker:         locker,
		logger:         logger,
	}
}

// Execute выполняет use case обновления расписания
// Обновление может сдвинуть расписание в другую область (аудитория, день
// недели), поэтому конфликты проверяются заново под блокировкой и в
// сериализуемой транзакции, как при создании. Само обновляемое расписание
// из проверки исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTimetable: id=%d, name=%q, room=%q, day=%s, lessons=%d-%d",
		req.ID, req.Name, req.RoomName, req.DayOfWeek, req.StartLesson, req.EndLesson)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateTimetable: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем текущую версию расписания
	current, err := uc.timetableRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
			uc.logger.Warn("UpdateTimetable: timetable id=%d not found", req.ID)
			return nil, ErrTimetableNotFound
		}
		uc.logger.Error("UpdateTimetable: failed to get timetable id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get timetable: %v", ErrInternal, err)
	}

	// 3. Парсим периоды занятий
	periods, err := domain.ParseStudyPeriods(req.StudyTime)
	if err != nil {
		uc.logger.Warn("UpdateTimetable: malformed study time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedStudyTime, err)
	}
	if len(periods) == 0 {
		uc.logger.Warn("UpdateTimetable: empty study time for id=%d", req.ID)
		return nil, ErrEmptyStudyTime
	}

	// 4. Парсим даты отмен (опциональные)
	cancelDates := make([]time.Time, 0, len(req.CancelDates))
	for _, s := range req.CancelDates {
		d, err := domain.ParseDate(s)
		if err != nil {
			uc.logger.Warn("UpdateTimetable: malformed cancel date %q", s)
			return nil, fmt.Errorf("%w: cancel date %q", ErrMalformedStudyTime, s)
		}
		cancelDates = append(cancelDates, d)
	}

	// 5. Проверяем, что оба номера пар есть в справочнике
	if err := uc.resolveLessonRange(ctx, req.StartLesson, req.EndLesson); err != nil {
		return nil, err
	}

	// 6. Разрешаем аудиторию по имени
	room, err := uc.facilityClient.GetRoomByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, facilityClient.ErrRoomNotFound) {
			uc.logger.Warn("UpdateTimetable: room %q not found", req.RoomName)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateTimetable: failed to get room %q: %v", req.RoomName, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 7. Проверяем существование преподавателя
	if _, err := uc.facilityClient.GetInstructor(ctx, req.InstructorID); err != nil {
		if errors.Is(err, facilityClient.ErrInstructorNotFound) {
			uc.logger.Warn("UpdateTimetable: instructor id=%d not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("UpdateTimetable: failed to get instructor id=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	// 8. Собираем обновленную версию, сохраняя статус и дату создания
	updated := &domain.Timetable{
		ID:               current.ID,
		Name:             req.Name,
		SemesterID:       req.SemesterID,
		DayOfWeek:        req.DayOfWeek,
		RoomID:           room.ID,
		RoomName:         room.Name,
		InstructorID:     req.InstructorID,
		ClassID:          req.ClassID,
		StartLesson:      req.StartLesson,
		EndLesson:        req.EndLesson,
		StudyPeriods:     periods,
		CancelDates:      cancelDates,
		NumberOfStudents: req.NumberOfStudents,
		Status:           current.Status,
		Description:      req.Description,
		CreatedAt:        current.CreatedAt,
	}

	// 9. Захватываем блокировку целевой области конфликта
	key := lockKey(room.ID, req.DayOfWeek, req.SemesterID)
	acquired, err := uc.locker.Lock(ctx, key, lockTTL)
	if err != nil {
		uc.logger.Error("UpdateTimetable: failed to acquire lock %q: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("UpdateTimetable: lock %q is busy", key)
		return nil, ErrLockBusy
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, key); err != nil {
			uc.logger.Error("UpdateTimetable: failed to release lock %q: %v", key, err)
		}
	}()

	// 10. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Проверяем уникальность имени в семестре, не считая себя
		if req.SemesterID != nil {
			exists, err := uc.timetableRepo.ExistsByNameAndSemesterExcluding(txCtx, req.Name, *req.SemesterID, req.ID)
			if err != nil {
				uc.logger.Error("UpdateTimetable: failed to check name uniqueness: %v", err)
				return fmt.Errorf("%w: failed to check name uniqueness: %v", ErrInternal, err)
			}
			if exists {
				uc.logger.Warn("UpdateTimetable: name %q already exists in semester %d", req.Name, *req.SemesterID)
				return ErrNameTaken
			}
		}

		// 10.2. Читаем существующие расписания области с блокировкой (FOR UPDATE)
		existing, err := uc.timetableRepo.GetWithFilter(txCtx, domain.TimetableFilter{
			RoomID:          &room.ID,
			DayOfWeek:       &req.DayOfWeek,
			SemesterID:      req.SemesterID,
			IncludeRejected: !req.ExcludeRejectedConflicts,
		})
		if err != nil {
			uc.logger.Error("UpdateTimetable: failed to get existing timetables: %v", err)
			return fmt.Errorf("%w: failed to get existing timetables: %v", ErrInternal, err)
		}

		// 10.3. Убираем из выборки само обновляемое расписание
		others := make([]*domain.Timetable, 0, len(existing))
		for _, t := range existing {
			if t.ID == req.ID {
				continue
			}
			others = append(others, t)
		}

		// 10.4. Проверяем конфликты
		conflicts := domain.FindConflicts(updated, others, domain.ConflictScope{
			SemesterID:      req.SemesterID,
			ExcludeRejected: req.ExcludeRejectedConflicts,
		})
		if len(conflicts) > 0 {
			c := conflicts[0]
			uc.logger.Warn("UpdateTimetable: conflict with timetable id=%d (%q) in room %q",
				c.ID, c.Name, c.RoomName)
			return fmt.Errorf("%w: with %q in room %s on %s, lessons %d-%d",
				ErrTimetableConflict, c.Name, c.RoomName, c.DayOfWeek, c.StartLesson, c.EndLesson)
		}

		// 10.5. Сохраняем изменения
		if err := uc.timetableRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, timetableRepo.ErrTimetableNotFound) {
				return ErrTimetableNotFound
			}
			uc.logger.Error("UpdateTimetable: failed to update timetable id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update timetable: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTimetable: successfully updated timetable id=%d", updated.ID)

	return toResponse(updated), nil
}

// resolveLessonRange проверяет оба номера пар по справочнику
// Неразрешимый номер равнозначен некорректному диапазону
func (uc *UseCase) resolveLessonRange(ctx context.Context, startLesson, endLesson int) error {
	lessonTimes, err := uc.lessonTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateTimetable: failed to load lesson time catalog: %v", err)
		return fmt.Errorf("%w: failed to load lesson time catalog: %v", ErrInternal, err)
	}

	catalog := domain.NewLessonTimeCatalog(lessonTimes)
	for _, number := range []int{startLesson, endLesson} {
		if _, ok := catalog.Resolve(number); !ok {
			uc.logger.Warn("UpdateTimetable: lesson number %d not found in catalog", number)
			return fmt.Errorf("%w: lesson number %d not found", ErrInvalidLessonRange, number)
		}
	}
	return nil
}
