package cancel_date

import "time"

// Request модель запроса на отмену занятия на конкретную дату
type Request struct {
	TimetableID int64
	Date        string // дата отмены dd/mm/yyyy
}

// Response модель ответа use case
type Response struct {
	TimetableID int64
	CancelDates []time.Time
	UpdatedAt   time.Time
}
