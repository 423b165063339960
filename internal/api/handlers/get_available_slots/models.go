package get_available_slots

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	getAvailableSlots "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/get_available_slots"
)

var (
	errMissingDate     = errors.New("date is required")
	errInvalidDate     = errors.New("invalid date")
	errInvalidDuration = errors.New("invalid duration")
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Дата интерпретируется в часовом поясе салона
func ToUseCaseRequest(dateStr, durationStr, serviceType string, loc *time.Location) (*getAvailableSlots.Request, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, errMissingDate
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, errInvalidDate
	}

	duration := 0
	if durationStr = strings.TrimSpace(durationStr); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			return nil, errInvalidDuration
		}
	}

	return &getAvailableSlots.Request{
		Date:            date,
		DurationMinutes: duration,
		ServiceType:     serviceType,
	}, nil
}
