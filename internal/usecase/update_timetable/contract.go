package update_timetable

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	"github.com/m04kA/SMC-TimetableService/internal/integrations/facilityservice"
)

// TimetableRepository интерфейс репозитория расписаний
type TimetableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Timetable, error)
	GetWithFilter(ctx context.Context, filter domain.TimetableFilter) ([]*domain.Timetable, error)
	ExistsByNameAndSemesterExcluding(ctx context.Context, name string, semesterID, excludeID int64) (bool, error)
	Update(ctx context.Context, t *domain.Timetable) error
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
