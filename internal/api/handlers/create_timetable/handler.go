package create_timetable

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	createTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/create_timetable"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayOfWeek   = "некорректный день недели"
	msgInvalidInput       = "некорректные данные расписания"
	msgInvalidLessonRange = "некорректный диапазон пар"
	msgMalformedStudyTime = "некорректный формат учебных периодов, ожидается dd/mm/yyyy"
	msgEmptyStudyTime     = "не задан ни один учебный период"
	msgRoomNotFound       = "аудитория не найдена"
	msgInstructorNotFound = "преподаватель не найден"
	msgNameTaken          = "расписание с таким именем уже существует в семестре"
	msgConflict           = "расписание пересекается с существующим"
	msgLockBusy           = "аудитория занята параллельным созданием, повторите запрос"
)

type Handler struct {
	useCase CreateTimetableUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimetableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timetables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTimetableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timetables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дня недели)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /timetables - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTimetable.ErrTimetableConflict):
			h.logger.Warn("POST /timetables - Conflict: name=%q, room=%q, error=%v", req.Name, req.RoomName, err)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, createTimetable.ErrNameTaken):
			h.logger.Warn("POST /timetables - Name taken: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgNameTaken)

		case errors.Is(err, createTimetable.ErrLockBusy):
			h.logger.Warn("POST /timetables - Lock busy: room=%q, day=%s", req.RoomName, req.DayOfWeek)
			handlers.RespondError(w, http.StatusConflict, msgLockBusy)

		case errors.Is(err, createTimetable.ErrRoomNotFound):
			h.logger.Warn("POST /timetables - Room not found: room=%q", req.RoomName)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createTimetable.ErrInstructorNotFound):
			h.logger.Warn("POST /timetables - Instructor not found: instructor_id=%d", req.InstructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		case errors.Is(err, createTimetable.ErrInvalidLessonRange):
			h.logger.Warn("POST /timetables - Invalid lesson range: %d-%d", req.StartLesson, req.EndLesson)
			handlers.RespondBadRequest(w, msgInvalidLessonRange)

		case errors.Is(err, createTimetable.ErrMalformedStudyTime):
			h.logger.Warn("POST /timetables - Malformed study time: %v", err)
			handlers.RespondBadRequest(w, msgMalformedStudyTime)

		case errors.Is(err, createTimetable.ErrEmptyStudyTime):
			h.logger.Warn("POST /timetables - Empty study time: name=%q", req.Name)
			handlers.RespondBadRequest(w, msgEmptyStudyTime)

		case errors.Is(err, createTimetable.ErrInvalidInput):
			h.logger.Warn("POST /timetables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /timetables - Failed to create timetable: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /timetables - Timetable created successfully: timetable_id=%d, name=%q, room=%q",
		result.ID, result.Name, result.RoomName)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
