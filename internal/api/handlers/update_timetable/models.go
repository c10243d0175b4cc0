package update_timetable

import (
	"time"

	createTimetable "github.com/m04kA/SMC-TimetableService/internal/api/handlers/create_timetable"
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	updateTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/update_timetable"
)

// UpdateTimetableRequest HTTP request model
// Идентификатор берется из пути, тело перезаписывает все изменяемые поля
type UpdateTimetableRequest struct {
	Name             string   `json:"name"`
	SemesterID       *int64   `json:"semesterId,omitempty"`
	DayOfWeek        string   `json:"dayOfWeek"` // "MONDAY" ... "SUNDAY"
	RoomName         string   `json:"roomName"`
	InstructorID     int64    `json:"instructorId"`
	ClassID          string   `json:"classId"`
	StartLesson      int      `json:"startLesson"`
	EndLesson        int      `json:"endLesson"`
	StudyTime        string   `json:"studyTime"` // периоды dd/mm/yyyy, по одному на строку
	CancelDates      []string `json:"cancelDates,omitempty"`
	NumberOfStudents int      `json:"numberOfStudents"`
	Description      *string  `json:"description,omitempty"`

	ExcludeRejectedConflicts bool `json:"excludeRejectedConflicts,omitempty"`
}

// TimetableResponse HTTP response model
type TimetableResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	SemesterID       *int64   `json:"semesterId,omitempty"`
	DayOfWeek        string   `json:"dayOfWeek"`
	RoomID           int64    `json:"roomId"`
	RoomName         string   `json:"roomName"`
	InstructorID     int64    `json:"instructorId"`
	ClassID          string   `json:"classId"`
	StartLesson      int      `json:"startLesson"`
	EndLesson        int      `json:"endLesson"`
	StudyTime        string   `json:"studyTime"`
	CancelDates      []string `json:"cancelDates,omitempty"`
	NumberOfStudents int      `json:"numberOfStudents"`
	Status           string   `json:"status"`
	Description      *string  `json:"description,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateTimetableRequest) ToUseCaseRequest(id int64) (*updateTimetable.Request, error) {
	dayOfWeek, err := createTimetable.ParseWeekday(r.DayOfWeek)
	if err != nil {
		return nil, err
	}

	return &updateTimetable.Request{
		ID:                       id,
		Name:                     r.Name,
		SemesterID:               r.SemesterID,
		DayOfWeek:                dayOfWeek,
		RoomName:                 r.RoomName,
		InstructorID:             r.InstructorID,
		ClassID:                  r.ClassID,
		StartLesson:              r.StartLesson,
		EndLesson:                r.EndLesson,
		StudyTime:                r.StudyTime,
		CancelDates:              r.CancelDates,
		NumberOfStudents:         r.NumberOfStudents,
		Description:              r.Description,
		ExcludeRejectedConflicts: r.ExcludeRejectedConflicts,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateTimetable.Response) *TimetableResponse {
	cancelDates := make([]string, 0, len(resp.CancelDates))
	for _, d := range resp.CancelDates {
		cancelDates = append(cancelDates, d.Format(domain.DateFormat))
	}

	return &TimetableResponse{
		ID:               resp.ID,
		Name:             resp.Name,
		SemesterID:       resp.SemesterID,
		DayOfWeek:        resp.DayOfWeek.String(),
		RoomID:           resp.RoomID,
		RoomName:         resp.RoomName,
		InstructorID:     resp.InstructorID,
		ClassID:          resp.ClassID,
		StartLesson:      resp.StartLesson,
		EndLesson:        resp.EndLesson,
		StudyTime:        domain.FormatStudyPeriods(resp.StudyPeriods),
		CancelDates:      cancelDates,
		NumberOfStudents: resp.NumberOfStudents,
		Status:           resp.Status,
		Description:      resp.Description,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
