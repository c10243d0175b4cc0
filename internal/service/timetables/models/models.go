package models

import (
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// Request модели

// GetByDateRequest запрос расписаний, активных на конкретную дату
type GetByDateRequest struct {
	Date   string `json:"date"`             // дата dd/mm/yyyy
	RoomID *int64 `json:"roomId,omitempty"` // Фильтр по аудитории (опционально)
}

// GetByRangeRequest запрос расписаний, попадающих в календарное окно
type GetByRangeRequest struct {
	StartDate  string `json:"startDate"`            // начало окна dd/mm/yyyy
	EndDate    string `json:"endDate"`              // конец окна dd/mm/yyyy
	SemesterID *int64 `json:"semesterId,omitempty"` // Фильтр по семестру (опционально)
}

// UpdateStatusRequest запрос на смену статуса расписания
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TimetableResponse ответ с данными расписания
type TimetableResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	SemesterID       *int64   `json:"semesterId,omitempty"`
	DayOfWeek        string   `json:"dayOfWeek"` // "Monday" ... "Sunday"
	RoomID           int64    `json:"roomId"`
	RoomName         string   `json:"roomName"`
	InstructorID     int64    `json:"instructorId"`
	ClassID          string   `json:"classId"`
	StartLesson      int      `json:"startLesson"`
	EndLesson        int      `json:"endLesson"`
	StudyTime        string   `json:"studyTime"`             // периоды в текстовом формате dd/mm/yyyy
	CancelDates      []string `json:"cancelDates,omitempty"` // даты отмен dd/mm/yyyy
	NumberOfStudents int      `json:"numberOfStudents"`
	TotalLessonDay   int      `json:"totalLessonDay"`
	Status           string   `json:"status"`
	Description      *string  `json:"description,omitempty"`

	// Конкретные даты занятий внутри запрошенного окна dd/mm/yyyy
	// Заполняется только при выборке по диапазону
	ActiveDates []string `json:"activeDates,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TimetableListResponse ответ со списком расписаний
type TimetableListResponse struct {
	Timetables []TimetableResponse `json:"timetables"`
}

// Методы конвертации

// FromDomainTimetable конвертирует domain модель в DTO
func FromDomainTimetable(t *domain.Timetable) *TimetableResponse {
	if t == nil {
		return nil
	}

	cancelDates := make([]string, 0, len(t.CancelDates))
	for _, d := range t.CancelDates {
		cancelDates = append(cancelDates, d.Format(domain.DateFormat))
	}

	return &TimetableResponse{
		ID:               t.ID,
		Name:             t.Name,
		SemesterID:       t.SemesterID,
		DayOfWeek:        t.DayOfWeek.String(),
		RoomID:           t.RoomID,
		RoomName:         t.RoomName,
		InstructorID:     t.InstructorID,
		ClassID:          t.ClassID,
		StartLesson:      t.StartLesson,
		EndLesson:        t.EndLesson,
		StudyTime:        domain.FormatStudyPeriods(t.StudyPeriods),
		CancelDates:      cancelDates,
		NumberOfStudents: t.NumberOfStudents,
		TotalLessonDay:   t.TotalLessonDay(),
		Status:           string(t.Status),
		Description:      t.Description,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// FromDomainTimetableList конвертирует список domain моделей в DTO
func FromDomainTimetableList(timetables []*domain.Timetable) *TimetableListResponse {
	resp := &TimetableListResponse{
		Timetables: make([]TimetableResponse, 0, len(timetables)),
	}
	for _, t := range timetables {
		resp.Timetables = append(resp.Timetables, *FromDomainTimetable(t))
	}
	return resp
}
