package domain

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentSource identifies the channel an appointment was created through
type AppointmentSource string

const (
	SourceWebsite AppointmentSource = "website"
	SourcePartner AppointmentSource = "partner"
)

// Appointment represents a salon booking
type Appointment struct {
	ID         int64
	CustomerID int64

	// Denormalized service data from the catalog at booking time
	ServiceSlug string
	ServiceName string
	ServiceType string // пустая строка = категория неизвестна

	Date time.Time // только дата, время хранится отдельно
	Time types.TimeString

	// DurationMinutes длительность, зафиксированная при создании (nil = брать из каталога)
	DurationMinutes *int

	Status AppointmentStatus
	Note   *string
	Source AppointmentSource

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// StartsAt returns the absolute start of the appointment in the date's location
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.Time.OnDate(a.Date)
}

// EffectiveDuration returns minutes, or the default duration when minutes is not positive
func EffectiveDuration(minutes int) int {
	if minutes <= 0 {
		return DefaultDurationMinutes
	}
	return minutes
}

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether an admin may move an appointment from s to next.
// Terminal statuses never change: reopening a cancelled appointment would skip admission.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if !s.IsValid() || s.IsTerminal() || !next.IsValid() || next == s {
		return false
	}
	// pending -> approved|completed|cancelled, approved -> completed|cancelled
	return next != StatusPending
}

// AppointmentsFilter фильтр для получения записей
type AppointmentsFilter struct {
	Date             *time.Time // Фильтр по дате (опционально)
	UpdatedSince     *time.Time // Только записи, измененные после указанного момента
	IncludeCancelled bool       // Включать ли отмененные записи
}
