package update_timetable

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.RoomName == "" {
		return fmt.Errorf("%w: roomName is required", ErrInvalidInput)
	}

	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < time.Sunday || req.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: dayOfWeek out of range", ErrInvalidInput)
	}

	if req.NumberOfStudents < 0 {
		return fmt.Errorf("%w: numberOfStudents must not be negative", ErrInvalidInput)
	}

	if req.StartLesson < 1 || req.EndLesson < 1 {
		return fmt.Errorf("%w: lesson numbers start at 1", ErrInvalidLessonRange)
	}

	if req.StartLesson > req.EndLesson {
		return fmt.Errorf("%w: start lesson %d is after end lesson %d",
			ErrInvalidLessonRange, req.StartLesson, req.EndLesson)
	}

	return nil
}

// lockKey строит ключ блокировки области проверки конфликтов:
// аудитория + день недели + семестр. Ключ совпадает с ключом создания,
// обновление и создание в одной области взаимно исключаются
func lockKey(roomID int64, dayOfWeek time.Weekday, semesterID *int64) string {
	if semesterID != nil {
		return fmt.Sprintf("timetable:%d:%d:%d", roomID, dayOfWeek, *semesterID)
	}
	return fmt.Sprintf("timetable:%d:%d", roomID, dayOfWeek)
}
