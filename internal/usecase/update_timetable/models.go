package update_timetable

import (
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// Request модель запроса на обновление расписания
// Все изменяемые поля перезаписываются целиком, статус не меняется:
// смена статуса выполняется отдельной операцией
type Request struct {
	ID               int64
	Name             string
	SemesterID       *int64
	DayOfWeek        time.Weekday
	RoomName         string
	InstructorID     int64
	ClassID          string
	StartLesson      int
	EndLesson        int
	StudyTime        string   // периоды в текстовом формате dd/mm/yyyy
	CancelDates      []string // даты отмен dd/mm/yyyy (опционально)
	NumberOfStudents int
	Description      *string

	// ExcludeRejectedConflicts исключает отклоненные расписания из проверки
	// конфликтов. По умолчанию они учитываются: отклоненное расписание может
	// представлять реальную заявку, требующую ручного разбора
	ExcludeRejectedConflicts bool
}

// Response модель ответа use case
type Response struct {
	ID               int64
	Name             string
	SemesterID       *int64
	DayOfWeek        time.Weekday
	RoomID           int64
	RoomName         string
	InstructorID     int64
	ClassID          string
	StartLesson      int
	EndLesson        int
	StudyPeriods     []domain.DateInterval
	CancelDates      []time.Time
	NumberOfStudents int
	Status           string
	Description      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func toResponse(t *domain.Timetable) *Response {
	return &Response{
		ID:               t.ID,
		Name:             t.Name,
		SemesterID:       t.SemesterID,
		DayOfWeek:        t.DayOfWeek,
		RoomID:           t.RoomID,
		RoomName:         t.RoomName,
		InstructorID:     t.InstructorID,
		ClassID:          t.ClassID,
		StartLesson:      t.StartLesson,
		EndLesson:        t.EndLesson,
		StudyPeriods:     t.StudyPeriods,
		CancelDates:      t.CancelDates,
		NumberOfStudents: t.NumberOfStudents,
		Status:           string(t.Status),
		Description:      t.Description,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
