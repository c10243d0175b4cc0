package timetables

import "errors"

var (
	// ErrTimetableNotFound возвращается, когда расписание не найдено
	ErrTimetableNotFound = errors.New("timetable not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при нечитаемой дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid timetable status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
