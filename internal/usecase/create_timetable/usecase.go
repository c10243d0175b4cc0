package create_timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	facilityClient "github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
)

// Время жизни блокировки области (аудитория, день недели, семестр)
const lockTTL = 10 * time.Second

// UseCase use case для создания расписания с проверкой конфликтов
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

// Execute выполняет use case создания расписания
// Последовательность "прочитать-проверить-записать" не атомарна сама по себе,
// поэтому она выполняется под распределенной блокировкой области и внутри
// сериализуемой транзакции с FOR UPDATE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimetable: name=%q, room=%q, day=%s, lessons=%d-%d",
		req.Name, req.RoomName, req.DayOfWeek, req.StartLesson, req.EndLesson)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTimetable: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим периоды занятий
	periods, err := domain.ParseStudyPeriods(req.StudyTime)
	if err != nil {
		uc.logger.Warn("CreateTimetable: malformed study time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedStudyTime, err)
	}
	if len(periods) == 0 {
		uc.logger.Warn("CreateTimetable: empty study time for name=%q", req.Name)
		return nil, ErrEmptyStudyTime
	}

	// 3. Парсим даты отмен (опциональные)
	cancelDates := make([]time.Time, 0, len(req.CancelDates))
	for _, s := range req.CancelDates {
		d, err := domain.ParseDate(s)
		if err != nil {
			uc.logger.Warn("CreateTimetable: malformed cancel date %q", s)
			return nil, fmt.Errorf("%w: cancel date %q", ErrMalformedStudyTime, s)
		}
		cancelDates = append(cancelDates, d)
	}

	// 4. Проверяем, что оба номера пар есть в справочнике
	if err := uc.resolveLessonRange(ctx, req.StartLesson, req.EndLesson); err != nil {
		return nil, err
	}

	// 5. Разрешаем аудиторию по имени
	room, err := uc.facilityClient.GetRoomByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, facilityClient.ErrRoomNotFound) {
			uc.logger.Warn("CreateTimetable: room %q not found", req.RoomName)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateTimetable: failed to get room %q: %v", req.RoomName, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 6. Проверяем существование преподавателя
	if _, err := uc.facilityClient.GetInstructor(ctx, req.InstructorID); err != nil {
		if errors.Is(err, facilityClient.ErrInstructorNotFound) {
			uc.logger.Warn("CreateTimetable: instructor id=%d not found", req.InstructorID)
			return nil, ErrInstructorNotFound
		}
		uc.logger.Error("CreateTimetable: failed to get instructor id=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: failed to get instructor: %v", ErrInternal, err)
	}

	// 7. Собираем кандидата
	status := domain.StatusPending
	if req.AutoApprove {
		status = domain.StatusApproved
	}

	candidate := &domain.Timetable{
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
		Status:           status,
		Description:      req.Description,
	}

	// 8. Захватываем блокировку области конфликта
	key := lockKey(room.ID, req.DayOfWeek, req.SemesterID)
	acquired, err := uc.locker.Lock(ctx, key, lockTTL)
	if err != nil {
		uc.logger.Error("CreateTimetable: failed to acquire lock %q: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("CreateTimetable: lock %q is busy", key)
		return nil, ErrLockBusy
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, key); err != nil {
			uc.logger.Error("CreateTimetable: failed to release lock %q: %v", key, err)
		}
	}()

	var result *domain.Timetable

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Проверяем уникальность имени в семестре
		if req.SemesterID != nil {
			exists, err := uc.timetableRepo.ExistsByNameAndSemester(txCtx, req.Name, *req.SemesterID)
			if err != nil {
				uc.logger.Error("CreateTimetable: failed to check name uniqueness: %v", err)
				return fmt.Errorf("%w: failed to check name uniqueness: %v", ErrInternal, err)
			}
			if exists {
				uc.logger.Warn("CreateTimetable: name %q already exists in semester %d", req.Name, *req.SemesterID)
				return ErrNameTaken
			}
		}

		// 9.2. Читаем существующие расписания области с блокировкой (FOR UPDATE)
		existing, err := uc.timetableRepo.GetWithFilter(txCtx, domain.TimetableFilter{
			RoomID:          &room.ID,
			DayOfWeek:       &req.DayOfWeek,
			SemesterID:      req.SemesterID,
			IncludeRejected: !req.ExcludeRejectedConflicts,
		})
		if err != nil {
			uc.logger.Error("CreateTimetable: failed to get existing timetables: %v", err)
			return fmt.Errorf("%w: failed to get existing timetables: %v", ErrInternal, err)
		}

		// 9.3. Проверяем конфликты
		conflicts := domain.FindConflicts(candidate, existing, domain.ConflictScope{
			SemesterID:      req.SemesterID,
			ExcludeRejected: req.ExcludeRejectedConflicts,
		})
		if len(conflicts) > 0 {
			c := conflicts[0]
			uc.logger.Warn("CreateTimetable: conflict with timetable id=%d (%q) in room %q",
				c.ID, c.Name, c.RoomName)
			return fmt.Errorf("%w: with %q in room %s on %s, lessons %d-%d",
				ErrTimetableConflict, c.Name, c.RoomName, c.DayOfWeek, c.StartLesson, c.EndLesson)
		}

		// 9.4. Сохраняем расписание
		created, err := uc.timetableRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateTimetable: failed to create timetable: %v", err)
			return fmt.Errorf("%w: failed to create timetable: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTimetable: successfully created timetable id=%d", result.ID)

	return toResponse(result), nil
}

// resolveLessonRange проверяет оба номера пар по справочнику
// Неразрешимый номер равнозначен некорректному диапазону
func (uc *UseCase) resolveLessonRange(ctx context.Context, startLesson, endLesson int) error {
	lessonTimes, err := uc.lessonTimeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateTimetable: failed to load lesson time catalog: %v", err)
		return fmt.Errorf("%w: failed to load lesson time catalog: %v", ErrInternal, err)
	}

	catalog := domain.NewLessonTimeCatalog(lessonTimes)
	for _, number := range []int{startLesson, endLesson} {
		if _, ok := catalog.Resolve(number); !ok {
			uc.logger.Warn("CreateTimetable: lesson number %d not found in catalog", number)
			return fmt.Errorf("%w: lesson number %d not found", ErrInvalidLessonRange, number)
		}
	}
	return nil
}
