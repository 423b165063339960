package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/api/handlers"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	createAppointment "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "не заполнены обязательные поля"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные записи"

	codeSlotFull         = "slot_full"
	codeServiceTypeLimit = "service_type_limit"
	codeSlotBusy         = "slot_busy"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	source   domain.AppointmentSource
	location *time.Location
	logger   Logger
}

// NewHandler создает обработчик записи для указанного канала (сайт или партнер)
func NewHandler(useCase CreateAppointmentUseCase, source domain.AppointmentSource, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		source:   source,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments и POST /api/v1/partner/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := h.route()

	var req CreateAppointmentRequest
	if err := h.decode(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST %s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.source, h.location)
	if err != nil {
		h.logger.Warn("POST %s - Failed to parse request: %v", route, err)
		var pe *parseError
		if errors.As(err, &pe) && pe.field == "time" {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotFull):
			h.logger.Warn("POST %s - Slot full: date=%s, time=%s", route, req.Date, req.Time)
			handlers.RespondConflict(w, createAppointment.ErrSlotFull.Error(), codeSlotFull)

		case errors.Is(err, createAppointment.ErrServiceTypeLimit):
			h.logger.Warn("POST %s - Service type limit: date=%s, time=%s, service=%s", route, req.Date, req.Time, req.Service)
			handlers.RespondConflict(w, createAppointment.ErrServiceTypeLimit.Error(), codeServiceTypeLimit)

		case errors.Is(err, createAppointment.ErrSlotBusy):
			h.logger.Warn("POST %s - Slot busy: date=%s, time=%s", route, req.Date, req.Time)
			handlers.RespondConflict(w, createAppointment.ErrSlotBusy.Error(), codeSlotBusy)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST %s - Failed to create appointment: date=%s, time=%s, error=%v",
				route, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Appointment created: appointment_id=%d, customer_id=%d, date=%s, time=%s",
		route, result.ID, result.CustomerID, req.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// decode партнерское приложение может присылать поля, которых мы не знаем
func (h *Handler) decode(r *http.Request, dst *CreateAppointmentRequest) error {
	if h.source == domain.SourcePartner {
		return handlers.DecodeJSONAllowUnknown(r, dst)
	}
	return handlers.DecodeJSON(r, dst)
}

func (h *Handler) route() string {
	if h.source == domain.SourcePartner {
		return "/partner/appointments"
	}
	return "/appointments"
}
