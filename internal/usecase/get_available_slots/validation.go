package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	req.DurationMinutes = domain.EffectiveDuration(req.DurationMinutes)

	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.Date = domain.StartOfDay(req.Date)

	return nil
}
