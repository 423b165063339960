package get_available_slots

import (
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// generateSlots обходит рабочее окно с фиксированным шагом SlotStepMinutes
// Слот [current, current+duration) выдается, если:
//   - не выходит за конец рабочего дня (окончание ровно в конец допустимо)
//   - не пересекается ни с одним занятым интервалом
//   - при заданной категории услуги проходит проверку вместимости для своего времени начала
func generateSlots(
	window domain.WorkWindow,
	durationMinutes int,
	busy []domain.BusyInterval,
	ledger *domain.CapacityLedger,
	serviceType string,
	limits domain.CapacityLimits,
) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if !window.Open {
		return slots
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(domain.SlotStepMinutes) * time.Minute

	for current := window.Start; !current.Add(duration).After(window.End); current = current.Add(step) {
		end := current.Add(duration)

		if domain.OverlapsAny(current, end, busy) {
			continue
		}

		key := types.NewTimeString(current)
		if serviceType != "" && ledger.Check(key, serviceType, limits) != nil {
			continue
		}

		slots = append(slots, key)
	}

	return slots
}
