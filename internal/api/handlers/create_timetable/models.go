package create_timetable

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
	createTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/create_timetable"
)

// CreateTimetableRequest HTTP request model
type CreateTimetableRequest struct {
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

	AutoApprove              bool `json:"autoApprove,omitempty"`
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

var weekdays = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ParseWeekday парсит название дня недели без учета регистра
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdays[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown day of week %q", s)
	}
	return d, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTimetableRequest) ToUseCaseRequest() (*createTimetable.Request, error) {
	dayOfWeek, err := ParseWeekday(r.DayOfWeek)
	if err != nil {
		return nil, err
	}

	return &createTimetable.Request{
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
		AutoApprove:              r.AutoApprove,
		ExcludeRejectedConflicts: r.ExcludeRejectedConflicts,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTimetable.Response) *TimetableResponse {
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
