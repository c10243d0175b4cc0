package get_week_range

import "time"

// Request модель запроса границ учебных недель семестра
type Request struct {
	SemesterID int64
}

// Response модель ответа use case
type Response struct {
	FirstWeekStart time.Time // понедельник первой учебной недели
	LastWeekEnd    time.Time // воскресенье последней учебной недели
}
