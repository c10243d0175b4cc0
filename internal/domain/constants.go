package domain

// Time format constants
const (
	DateFormat = "02/01/2006" // dd/mm/yyyy, the study-time wire format
	TimeFormat = "15:04"      // HH:MM
)

// periodSeparator разделяет периоды внутри study_time
// Несколько периодов или отдельных дат записываются с новой строки
const periodSeparator = "\n"

// InactiveStatuses список статусов, исключаемых из выборок по флагу
// Используется репозиторием при фильтрации
var InactiveStatuses = []TimetableStatus{
	StatusRejected,
}
