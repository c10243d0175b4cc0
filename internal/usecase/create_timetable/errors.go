package create_timetable

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_timetable: invalid input data")

	// ErrInvalidLessonRange возвращается, когда диапазон пар некорректен
	// или номер пары отсутствует в справочнике
	ErrInvalidLessonRange = errors.New("create_timetable: invalid lesson range")

	// ErrMalformedStudyTime возвращается при нечитаемом тексте периодов
	ErrMalformedStudyTime = errors.New("create_timetable: malformed study time")

	// ErrEmptyStudyTime возвращается, когда список периодов пуст
	ErrEmptyStudyTime = errors.New("create_timetable: study time has no periods")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("create_timetable: room not found")

	// ErrInstructorNotFound возвращается, когда преподаватель не найден
	ErrInstructorNotFound = errors.New("create_timetable: instructor not found")

	// ErrNameTaken возвращается, когда имя расписания уже занято в семестре
	ErrNameTaken = errors.New("create_timetable: timetable name already exists in semester")

	// ErrTimetableConflict возвращается при пересечении с существующим
	// расписанием. Текст ошибки называет конфликтующее расписание, аудиторию,
	// день недели и диапазон пар
	ErrTimetableConflict = errors.New("create_timetable: timetable conflict")

	// ErrLockBusy возвращается, когда область (аудитория, день недели, семестр)
	// заблокирована параллельным созданием
	ErrLockBusy = errors.New("create_timetable: concurrent creation in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_timetable: internal error")
)
