package get_week_range

import (
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	getWeekRange "github.com/m04kA/SMC-TimetableService/internal/usecase/get_week_range"
)

// WeekRangeResponse HTTP response model
type WeekRangeResponse struct {
	FirstWeekStart string `json:"firstWeekStart"` // понедельник первой учебной недели dd/mm/yyyy
	LastWeekEnd    string `json:"lastWeekEnd"`    // воскресенье последней учебной недели dd/mm/yyyy
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekRange.Response) *WeekRangeResponse {
	return &WeekRangeResponse{
		FirstWeekStart: resp.FirstWeekStart.Format(domain.DateFormat),
		LastWeekEnd:    resp.LastWeekEnd.Format(domain.DateFormat),
	}
}
