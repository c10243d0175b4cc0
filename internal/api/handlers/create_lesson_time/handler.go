package create_lesson_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes"
	"github.com/m04kA/SMC-TimetableService/internal/service/lessontimes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLessonTime  = "некорректные данные пары"
	msgNumberTaken        = "пара с таким номером уже существует"
)

type Handler struct {
	service LessonTimeService
	logger  Logger
}

func NewHandler(service LessonTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/lesson-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lesson-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, lessontimes.ErrLessonNumberTaken):
			h.logger.Warn("POST /lesson-times - Number taken: lesson_number=%d", req.LessonNumber)
			handlers.RespondError(w, http.StatusConflict, msgNumberTaken)

		case errors.Is(err, lessontimes.ErrInvalidInput):
			h.logger.Warn("POST /lesson-times - Invalid lesson time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLessonTime)

		default:
			h.logger.Error("POST /lesson-times - Failed to create lesson time: lesson_number=%d, error=%v",
				req.LessonNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lesson-times - Lesson time created: id=%d, lesson_number=%d",
		result.ID, result.LessonNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
