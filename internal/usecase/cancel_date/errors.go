package cancel_date

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_date: invalid input data")

	// ErrMalformedDate возвращается при нечитаемой дате отмены
	ErrMalformedDate = errors.New("cancel_date: malformed cancel date")

	// ErrTimetableNotFound возвращается, когда расписание не найдено
	ErrTimetableNotFound = errors.New("cancel_date: timetable not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_date: internal error")
)
