package timetable

import "errors"

var (
	// ErrTimetableNotFound возвращается, когда расписание не найдено
	ErrTimetableNotFound = errors.New("timetable.repository: timetable not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timetable.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timetable.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timetable.repository: failed to scan row")
)
