package lessontime

import "errors"

var (
	// ErrLessonTimeNotFound возвращается, когда пара не найдена
	ErrLessonTimeNotFound = errors.New("lessontime.repository: lesson time not found")

	// ErrLessonNumberTaken возвращается при попытке создать пару с занятым номером
	ErrLessonNumberTaken = errors.New("lessontime.repository: lesson number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lessontime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lessontime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lessontime.repository: failed to scan row")
)
