package cancel_timetable_date

import (
	"github.com/m04kA/SMC-TimetableService/internal/domain"
	cancelDate "github.com/m04kA/SMC-TimetableService/internal/usecase/cancel_date"
)

// CancelDateRequest HTTP request model
type CancelDateRequest struct {
	Date string `json:"date"` // дата отмены dd/mm/yyyy
}

// CancelDateResponse HTTP response model
type CancelDateResponse struct {
	TimetableID int64    `json:"timetableId"`
	CancelDates []string `json:"cancelDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelDate.Response) *CancelDateResponse {
	dates := make([]string, 0, len(resp.CancelDates))
	for _, d := range resp.CancelDates {
		dates = append(dates, d.Format(domain.DateFormat))
	}
	return &CancelDateResponse{
		TimetableID: resp.TimetableID,
		CancelDates: dates,
	}
}
