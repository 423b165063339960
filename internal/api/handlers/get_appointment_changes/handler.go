package get_appointment_changes

import (
	"errors"
	"net/http"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments"
)

const (
	msgMissingSince = "параметр since обязателен"
	msgInvalidSince = "некорректный формат since, ожидается RFC3339"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments/changes?since=2025-10-15T08:00:00Z
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sinceStr := r.URL.Query().Get("since")
	if sinceStr == "" {
		h.logger.Warn("GET /admin/appointments/changes - Missing since")
		handlers.RespondBadRequest(w, msgMissingSince)
		return
	}

	since, err := time.Parse(time.RFC3339, sinceStr)
	if err != nil {
		h.logger.Warn("GET /admin/appointments/changes - Invalid since: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSince)
		return
	}

	result, err := h.service.Changes(r.Context(), since)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments/changes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSince)

		default:
			h.logger.Error("GET /admin/appointments/changes - Failed to get changes: since=%s, error=%v", sinceStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments/changes - Changes retrieved: since=%s, count=%d",
		sinceStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
