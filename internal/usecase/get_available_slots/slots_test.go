package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// 2024-06-03 - понедельник
var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
}

func window(fromH, fromM, toH, toM int) domain.WorkWindow {
	return domain.WorkWindow{Open: true, Start: at(fromH, fromM), End: at(toH, toM)}
}

func ledgerOf(t *testing.T, appointments ...*domain.Appointment) *domain.CapacityLedger {
	t.Helper()
	ledger, skipped := domain.NewCapacityLedger(appointments)
	require.Empty(t, skipped)
	return ledger
}

func booked(id int64, clock, serviceType string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		Date:        monday,
		Time:        types.TimeString(clock),
		ServiceType: serviceType,
		Status:      status,
	}
}

func TestGenerateSlots_MondayMorning(t *testing.T) {
	slots := generateSlots(window(9, 0, 12, 0), 60, nil, nil, "", domain.DefaultCapacityLimits())

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestGenerateSlots_Closed(t *testing.T) {
	slots := generateSlots(domain.WorkWindow{}, 60, nil, nil, "braids", domain.DefaultCapacityLimits())

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_BoundaryFit(t *testing.T) {
	limits := domain.DefaultCapacityLimits()

	assert.Equal(t, []types.TimeString{"09:00"}, generateSlots(window(9, 0, 10, 0), 60, nil, nil, "", limits))
	assert.Empty(t, generateSlots(window(9, 0, 10, 0), 61, nil, nil, "", limits))
}

func TestGenerateSlots_StartAfterEnd(t *testing.T) {
	slots := generateSlots(window(18, 0, 9, 0), 30, nil, nil, "", domain.DefaultCapacityLimits())
	assert.Empty(t, slots)
}

func TestGenerateSlots_GridAlignment(t *testing.T) {
	// Длительность 45 минут не меняет шаг сетки
	slots := generateSlots(window(9, 0, 17, 0), 45, nil, nil, "", domain.DefaultCapacityLimits())

	require.NotEmpty(t, slots)
	for _, s := range slots {
		minutes, err := s.Minutes()
		require.NoError(t, err)
		assert.Zero(t, (minutes-9*60)%domain.SlotStepMinutes, "slot %s is off the grid", s)
	}
	assert.NotContains(t, slots, types.TimeString("09:15"))
	assert.Equal(t, types.TimeString("16:00"), slots[len(slots)-1])
}

func TestGenerateSlots_GridFollowsOddWorkStart(t *testing.T) {
	slots := generateSlots(window(9, 15, 11, 0), 30, nil, nil, "", domain.DefaultCapacityLimits())
	assert.Equal(t, []types.TimeString{"09:15", "09:45", "10:15"}, slots)
}

func TestGenerateSlots_SkipsBusyIntervals(t *testing.T) {
	busy := []domain.BusyInterval{
		{Start: at(10, 0), End: at(11, 0), Source: domain.BusySourceAppointment},
		{Start: at(13, 15), End: at(13, 45), Source: domain.BusySourceCalendar},
	}

	slots := generateSlots(window(9, 0, 15, 0), 60, busy, nil, "", domain.DefaultCapacityLimits())

	// 09:00-10:00 и 11:00-12:00 касаются занятого интервала границей и допустимы
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "11:30", "12:00", "14:00"}, slots)

	for _, s := range slots {
		start, err := s.OnDate(monday)
		require.NoError(t, err)
		assert.False(t, domain.OverlapsAny(start, start.Add(time.Hour), busy), "slot %s overlaps", s)
	}
}

func TestGenerateSlots_CapacityCap(t *testing.T) {
	ledger := ledgerOf(t,
		booked(1, "10:00", "braids", domain.StatusPending),
		booked(2, "10:00", "braids", domain.StatusApproved),
		booked(3, "10:00", "braids", domain.StatusPending),
		booked(4, "10:00", "braids", domain.StatusCompleted),
	)

	withType := generateSlots(window(9, 0, 12, 0), 60, nil, ledger, "braids", domain.DefaultCapacityLimits())
	assert.NotContains(t, withType, types.TimeString("10:00"))
	assert.Contains(t, withType, types.TimeString("09:30"))

	// Без категории услуги проверка вместимости не применяется
	withoutType := generateSlots(window(9, 0, 12, 0), 60, nil, ledger, "", domain.DefaultCapacityLimits())
	assert.Contains(t, withoutType, types.TimeString("10:00"))
}

func TestGenerateSlots_ServiceDiversityCap(t *testing.T) {
	ledger := ledgerOf(t,
		booked(1, "10:00", "A", domain.StatusPending),
		booked(2, "10:00", "B", domain.StatusPending),
	)
	limits := domain.DefaultCapacityLimits()

	assert.NotContains(t, generateSlots(window(9, 0, 12, 0), 60, nil, ledger, "C", limits), types.TimeString("10:00"))
	assert.Contains(t, generateSlots(window(9, 0, 12, 0), 60, nil, ledger, "A", limits), types.TimeString("10:00"))
}

func TestGenerateSlots_CancelledInvisible(t *testing.T) {
	ledger := ledgerOf(t,
		booked(1, "10:00", "A", domain.StatusCancelled),
		booked(2, "10:00", "B", domain.StatusCancelled),
		booked(3, "10:00", "D", domain.StatusCancelled),
		booked(4, "10:00", "E", domain.StatusCancelled),
	)

	slots := generateSlots(window(9, 0, 12, 0), 60, nil, ledger, "C", domain.DefaultCapacityLimits())
	assert.Contains(t, slots, types.TimeString("10:00"))
}

func TestGenerateSlots_CustomLimits(t *testing.T) {
	ledger := ledgerOf(t, booked(1, "09:00", "A", domain.StatusPending))
	limits := domain.CapacityLimits{MaxBookings: 1, MaxServiceTypes: 1}

	slots := generateSlots(window(9, 0, 10, 0), 30, nil, ledger, "A", limits)
	assert.Equal(t, []types.TimeString{"09:30"}, slots)
}
