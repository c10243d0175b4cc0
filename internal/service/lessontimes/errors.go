package lessontimes

import "errors"

var (
	// ErrLessonTimeNotFound возвращается, когда пара не найдена
	ErrLessonTimeNotFound = errors.New("lesson time not found")

	// ErrLessonNumberTaken возвращается при попытке создать пару с занятым номером
	ErrLessonNumberTaken = errors.New("lesson number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
