package get_week_range

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_range: invalid input data")

	// ErrNoStudyPeriods возвращается, когда в семестре нет расписаний
	// с учебными периодами и границы недель вывести не из чего
	ErrNoStudyPeriods = errors.New("get_week_range: no study periods in semester")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_range: internal error")
)
