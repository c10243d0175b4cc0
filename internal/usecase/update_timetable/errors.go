package update_timetable

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_timetable: invalid input data")

	// ErrTimetableNotFound возвращается, когда обновляемое расписание не найдено
	ErrTimetableNotFound = errors.New("update_timetable: timetable not found")

	// ErrInvalidLessonRange возвращается, когда диапазон пар некорректен
	// или номер пары отсутствует в справочнике
	ErrInvalidLessonRange = errors.New("update_timetable: invalid lesson range")

	// ErrMalformedStudyTime возвращается при нечитаемом тексте периодов
	ErrMalformedStudyTime = errors.New("update_timetable: malformed study time")

	// ErrEmptyStudyTime возвращается, когда список периодов пуст
	ErrEmptyStudyTime = errors.New("update_timetable: study time has no periods")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("update_timetable: room not found")

	// ErrInstructorNotFound возвращается, когда преподаватель не найден
	ErrInstructorNotFound = errors.New("update_timetable: instructor not found")

	// ErrNameTaken возвращается, когда имя занято другим расписанием семестра
	ErrNameTaken = errors.New("update_timetable: timetable name already exists in semester")

	// ErrTimetableConflict возвращается при пересечении с существующим
	// расписанием. Текст ошибки называет конфликтующее расписание, аудиторию,
	// день недели и диапазон пар
	ErrTimetableConflict = errors.New("update_timetable: timetable conflict")

	// ErrLockBusy возвращается, когда область (аудитория, день недели, семестр)
	// заблокирована параллельным изменением
	ErrLockBusy = errors.New("update_timetable: concurrent modification in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_timetable: internal error")
)
