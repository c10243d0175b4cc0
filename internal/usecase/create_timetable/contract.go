package create_timetable

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
)

// TimetableRepository интерфейс репозитория расписаний
type TimetableRepository interface {
	Create(ctx context.Context, t *domain.Timetable) (*domain.Timetable, error)
	GetWithFilter(ctx context.Context, filter domain.TimetableFilter) ([]*domain.Timetable, error)
	ExistsByNameAndSemester(ctx context.Context, name string, semesterID int64) (bool, error)
}

// LessonTimeRepository интерфейс справочника пар
type LessonTimeRepository interface {
	List(ctx context.Context) ([]*domain.LessonTime, error)
}

// FacilityServiceClient интерфейс клиента FacilityService
type FacilityServiceClient interface {
	GetRoomByName(ctx context.Context, name string) (*facilityservice.Room, error)
	GetInstructor(ctx context.Context, id int64) (*facilityservice.Instructor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker интерфейс распределенной блокировки вокруг проверки конфликтов
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
