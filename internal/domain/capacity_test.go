package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

func appt(id int64, tm string, serviceType string, status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:          id,
		Date:        monday,
		Time:        types.TimeString(tm),
		ServiceType: serviceType,
		Status:      status,
	}
}

func TestNewCapacityLedger_GroupsByExactTime(t *testing.T) {
	ledger, skipped := NewCapacityLedger([]*Appointment{
		appt(1, "09:00", "hair", StatusPending),
		appt(2, "9:00", "nails", StatusApproved),
		appt(3, "09:15", "hair", StatusPending),
		appt(4, "09:00", "", StatusCompleted),
	})

	require.Empty(t, skipped)

	rec := ledger.Record("09:00")
	assert.Equal(t, 3, rec.Count)
	assert.Len(t, rec.ServiceTypes, 2)
	assert.True(t, rec.HasServiceType("nails"))

	assert.Equal(t, 1, ledger.Record("09:15").Count)
	assert.Equal(t, 0, ledger.Record("10:00").Count)
}

func TestNewCapacityLedger_IgnoresCancelled(t *testing.T) {
	ledger, skipped := NewCapacityLedger([]*Appointment{
		appt(1, "10:00", "hair", StatusCancelled),
		appt(2, "10:00", "nails", StatusCancelled),
	})

	assert.Empty(t, skipped)
	assert.Equal(t, CapacityRecord{}, ledger.Record("10:00"))
}

func TestNewCapacityLedger_SkipsMalformed(t *testing.T) {
	ledger, skipped := NewCapacityLedger([]*Appointment{
		appt(1, "ten", "hair", StatusPending),
		appt(2, "10:00", "hair", StatusPending),
	})

	require.Len(t, skipped, 1)
	assert.Equal(t, int64(1), skipped[0].Appointment.ID)
	assert.ErrorIs(t, skipped[0].Err, types.ErrInvalidTimeString)
	assert.Equal(t, 1, ledger.Record("10:00").Count)
}

func TestNewCapacityLedger_SkipsNil(t *testing.T) {
	ledger, skipped := NewCapacityLedger([]*Appointment{
		nil,
		appt(1, "11:00", "hair", StatusApproved),
		nil,
	})

	assert.Empty(t, skipped)
	assert.Equal(t, 1, ledger.Record("11:00").Count)

	empty, skipped := NewCapacityLedger(nil)
	assert.Empty(t, skipped)
	assert.Equal(t, CapacityRecord{}, empty.Record("11:00"))
}

func TestCapacityRecord_Check(t *testing.T) {
	limits := DefaultCapacityLimits()

	full, _ := NewCapacityLedger([]*Appointment{
		appt(1, "10:00", "A", StatusPending),
		appt(2, "10:00", "A", StatusPending),
		appt(3, "10:00", "A", StatusPending),
		appt(4, "10:00", "A", StatusPending),
	})
	diverse, _ := NewCapacityLedger([]*Appointment{
		appt(1, "10:00", "A", StatusPending),
		appt(2, "10:00", "B", StatusApproved),
	})
	fullAndDiverse, _ := NewCapacityLedger([]*Appointment{
		appt(1, "10:00", "A", StatusPending),
		appt(2, "10:00", "B", StatusPending),
		appt(3, "10:00", "A", StatusPending),
		appt(4, "10:00", "B", StatusPending),
	})

	tests := []struct {
		name        string
		ledger      *CapacityLedger
		serviceType string
		wantErr     error
	}{
		{"empty slot", &CapacityLedger{}, "A", nil},
		{"full slot same type", full, "A", ErrSlotFull},
		{"full slot no type", full, "", ErrSlotFull},
		{"third type rejected", diverse, "C", ErrServiceTypeLimit},
		{"existing type admitted", diverse, "A", nil},
		{"no type skips diversity rule", diverse, "", nil},
		{"count rule wins over diversity", fullAndDiverse, "C", ErrSlotFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ledger.Check("10:00", tt.serviceType, limits)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCapacityLedger_NilRecord(t *testing.T) {
	var ledger *CapacityLedger
	assert.NoError(t, ledger.Check("10:00", "A", DefaultCapacityLimits()))
}
