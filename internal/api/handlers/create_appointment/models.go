package create_appointment

import (
	"fmt"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	createAppointment "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/create_appointment"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Service     string  `json:"service" validate:"required"`
	ServiceType string  `json:"serviceType,omitempty"`
	Date        string  `json:"date" validate:"required"` // "2025-10-15"
	Time        string  `json:"time" validate:"required"` // "10:00"
	Note        *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	Service         string  `json:"service"`
	ServiceName     string  `json:"serviceName"`
	ServiceType     string  `json:"serviceType,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	Note            *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

func (e *parseError) Unwrap() error {
	return e.err
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(source domain.AppointmentSource, loc *time.Location) (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, &parseError{field: "date", err: err}
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, &parseError{field: "time", err: err}
	}

	return &createAppointment.Request{
		Source:        source,
		CustomerName:  r.Name,
		CustomerEmail: r.Email,
		CustomerPhone: r.Phone,
		ServiceSlug:   r.Service,
		ServiceType:   r.ServiceType,
		Date:          date,
		Time:          startTime,
		Note:          r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		Service:         resp.ServiceSlug,
		ServiceName:     resp.ServiceName,
		ServiceType:     resp.ServiceType,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		Source:          string(resp.Source),
		Note:            resp.Note,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
