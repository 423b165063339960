package get_work_schedule

import (
	"net/http"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/work-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/work-schedule - Failed to get schedule: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/work-schedule - Schedule retrieved")
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
