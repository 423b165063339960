package get_appointment_changes

import (
	"context"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	Changes(ctx context.Context, since time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
