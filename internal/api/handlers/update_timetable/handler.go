package update_timetable

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	updateTimetable "github.com/m04kA/SMC-TimetableService/internal/usecase/update_timetable"
)

const (
	msgInvalidTimetableID = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayOfWeek   = "некорректный день недели"
	msgInvalidInput       = "некорректные данные расписания"
	msgInvalidLessonRange = "некорректный диапазон пар"
	msgMalformedStudyTime = "некорректный формат учебных периодов, ожидается dd/mm/yyyy"
	msgEmptyStudyTime     = "не задан ни один учебный период"
	msgNotFound           = "расписание не найдено"
	msgRoomNotFound       = "аудитория не найдена"
	msgInstructorNotFound = "преподаватель не найден"
	msgNameTaken          = "расписание с таким именем уже существует в семестре"
	msgConflict           = "расписание пересекается с существующим"
	msgLockBusy           = "аудитория занята параллельным изменением, повторите запрос"
)

type Handler struct {
	useCase UpdateTimetableUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTimetableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/timetables/{timetableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timetableID, err := strconv.ParseInt(vars["timetableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /timetables/{id} - Invalid timetable ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimetableID)
		return
	}

	var req UpdateTimetableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /timetables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дня недели)
	useCaseReq, err := req.ToUseCaseRequest(timetableID)
	if err != nil {
		h.logger.Warn("PUT /timetables/{id} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateTimetable.ErrTimetableNotFound):
			h.logger.Warn("PUT /timetables/{id} - Timetable not found: timetable_id=%d", timetableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateTimetable.ErrTimetableConflict):
			h.logger.Warn("PUT /timetables/{id} - Conflict: timetable_id=%d, error=%v", timetableID, err)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, updateTimetable.ErrNameTaken):
			h.logger.Warn("PUT /timetables/{id} - Name taken: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgNameTaken)

		case errors.Is(err, updateTimetable.ErrLockBusy):
			h.logger.Warn("PUT /timetables/{id} - Lock busy: room=%q, day=%s", req.RoomName, req.DayOfWeek)
			handlers.RespondError(w, http.StatusConflict, msgLockBusy)

		case errors.Is(err, updateTimetable.ErrRoomNotFound):
			h.logger.Warn("PUT /timetables/{id} - Room not found: room=%q", req.RoomName)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateTimetable.ErrInstructorNotFound):
			h.logger.Warn("PUT /timetables/{id} - Instructor not found: instructor_id=%d", req.InstructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		case errors.Is(err, updateTimetable.ErrInvalidLessonRange):
			h.logger.Warn("PUT /timetables/{id} - Invalid lesson range: %d-%d", req.StartLesson, req.EndLesson)
			handlers.RespondBadRequest(w, msgInvalidLessonRange)

		case errors.Is(err, updateTimetable.ErrMalformedStudyTime):
			h.logger.Warn("PUT /timetables/{id} - Malformed study time: %v", err)
			handlers.RespondBadRequest(w, msgMalformedStudyTime)

		case errors.Is(err, updateTimetable.ErrEmptyStudyTime):
			h.logger.Warn("PUT /timetables/{id} - Empty study time: timetable_id=%d", timetableID)
			handlers.RespondBadRequest(w, msgEmptyStudyTime)

		case errors.Is(err, updateTimetable.ErrInvalidInput):
			h.logger.Warn("PUT /timetables/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /timetables/{id} - Failed to update timetable: timetable_id=%d, error=%v",
				timetableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /timetables/{id} - Timetable updated successfully: timetable_id=%d, name=%q, room=%q",
		result.ID, result.Name, result.RoomName)
	handlers.RespondJSON(w, http.StatusOK, response)
}
