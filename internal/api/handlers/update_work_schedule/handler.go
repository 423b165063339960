package update_work_schedule

import (
	"errors"
	"net/http"
	"strings"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные расписания"
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

// Handle PUT /api/v1/admin/work-schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/work-schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/work-schedule - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData+": "+strings.TrimPrefix(err.Error(), schedule.ErrInvalidInput.Error()+": "))

		default:
			h.logger.Error("PUT /admin/work-schedule - Failed to update schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/work-schedule - Schedule updated: days=%d", len(req.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
