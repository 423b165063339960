package models

import (
	"errors"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей
type ListAppointmentsRequest struct {
	Date             *time.Time `json:"date,omitempty"`             // Дата (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные записи
}

// UpdateStatusRequest запрос на изменение статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceSlug     string  `json:"service"`
	ServiceName     string  `json:"serviceName"`
	ServiceType     *string `json:"serviceType,omitempty"`
	Date            string  `json:"date"` // "2025-10-15"
	Time            string  `json:"time"` // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Status          string  `json:"status"`
	Note            *string `json:"note,omitempty"`
	Source          string  `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		ServiceSlug:     a.ServiceSlug,
		ServiceName:     a.ServiceName,
		Date:            a.Date.Format(domain.DateFormat),
		Time:            a.Time.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Note:            a.Note,
		Source:          string(a.Source),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if a.ServiceType != "" {
		serviceType := a.ServiceType
		resp.ServiceType = &serviceType
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
