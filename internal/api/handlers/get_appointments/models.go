package get_appointments

import (
	"strconv"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
// Пустые параметры означают "все даты" и "без отмененных"
func ToServiceRequest(dateStr, includeCancelledStr string, loc *time.Location) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if includeCancelledStr != "" {
		include, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
