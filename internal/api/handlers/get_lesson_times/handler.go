package get_lesson_times

import (
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
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

// Handle GET /api/v1/lesson-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /lesson-times - Failed to fetch lesson times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lesson-times - Fetched %d lesson times", len(result.LessonTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
