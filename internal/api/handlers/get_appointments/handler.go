package get_appointments

import (
	"net/http"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
)

const (
	msgInvalidQuery = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и includeCancelled=true|false"
)

type Handler struct {
	service  AppointmentService
	location *time.Location
	logger   Logger
}

func NewHandler(service AppointmentService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: date (YYYY-MM-DD), includeCancelled (bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("date"), query.Get("includeCancelled"), h.location)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: date=%q, count=%d",
		query.Get("date"), len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
