package models

import (
	"time"

	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

// Request модели

// CreateLessonTimeRequest запрос на создание слота пары
type CreateLessonTimeRequest struct {
	LessonNumber int    `json:"lessonNumber"`
	StartTime    string `json:"startTime"` // "08:00"
	EndTime      string `json:"endTime"`   // "09:35"
	Session      string `json:"session"`   // MORNING | AFTERNOON | EVENING
}

// Response модели

// LessonTimeResponse ответ с данными слота пары
type LessonTimeResponse struct {
	ID           int64  `json:"id"`
	LessonNumber int    `json:"lessonNumber"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Session      string `json:"session"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LessonTimeListResponse ответ со списком слотов пар
type LessonTimeListResponse struct {
	LessonTimes []LessonTimeResponse `json:"lessonTimes"`
}

// Методы конвертации

// FromDomainLessonTime конвертирует domain модель в DTO
func FromDomainLessonTime(lt *domain.LessonTime) *LessonTimeResponse {
	if lt == nil {
		return nil
	}
	return &LessonTimeResponse{
		ID:           lt.ID,
		LessonNumber: lt.LessonNumber,
		StartTime:    lt.StartTime,
		EndTime:      lt.EndTime,
		Session:      string(lt.Session),
		CreatedAt:    lt.CreatedAt,
		UpdatedAt:    lt.UpdatedAt,
	}
}

// FromDomainLessonTimeList конвертирует список domain моделей в DTO
func FromDomainLessonTimeList(lessonTimes []*domain.LessonTime) *LessonTimeListResponse {
	resp := &LessonTimeListResponse{
		LessonTimes: make([]LessonTimeResponse, 0, len(lessonTimes)),
	}
	for _, lt := range lessonTimes {
		resp.LessonTimes = append(resp.LessonTimes, *FromDomainLessonTime(lt))
	}
	return resp
}
