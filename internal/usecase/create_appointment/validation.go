package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if req.Source != domain.SourceWebsite && req.Source != domain.SourcePartner {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	req.CustomerEmail = strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if req.CustomerEmail == "" || !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if req.CustomerPhone != nil {
		phone := strings.TrimSpace(*req.CustomerPhone)
		if phone == "" {
			req.CustomerPhone = nil
		} else {
			req.CustomerPhone = &phone
		}
	}

	req.ServiceSlug = strings.TrimSpace(req.ServiceSlug)
	if req.ServiceSlug == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	req.ServiceType = strings.TrimSpace(req.ServiceType)

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	req.Date = domain.StartOfDay(req.Date)

	// Проверяем, что время указано, и приводим к виду "HH:MM" (ключ журнала вместимости)
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	normalized, err := types.NewTimeStringFromString(req.Time.String())
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	req.Time = normalized

	if req.Note != nil && utf8.RuneCountInString(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
