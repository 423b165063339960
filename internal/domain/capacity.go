package domain

import (
	"errors"
	"fmt"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

var (
	// ErrSlotFull the start time already holds the maximum number of bookings
	ErrSlotFull = errors.New("this time slot is fully booked")
	// ErrServiceTypeLimit the start time already holds the maximum number of distinct service types
	ErrServiceTypeLimit = errors.New("too many different services are already booked at this time")
)

// CapacityLimits per exact start time
type CapacityLimits struct {
	MaxBookings     int
	MaxServiceTypes int
}

// DefaultCapacityLimits returns the salon's standard limits
func DefaultCapacityLimits() CapacityLimits {
	return CapacityLimits{
		MaxBookings:     DefaultMaxBookingsPerSlot,
		MaxServiceTypes: DefaultMaxServiceTypesPerSlot,
	}
}

// CapacityRecord tallies active bookings sharing one start time
type CapacityRecord struct {
	Count        int
	ServiceTypes map[string]struct{}
}

// HasServiceType returns true if serviceType is already booked at this time
func (r CapacityRecord) HasServiceType(serviceType string) bool {
	_, ok := r.ServiceTypes[serviceType]
	return ok
}

// Check returns ErrSlotFull or ErrServiceTypeLimit if one more booking of serviceType
// would break the limits. The count rule is checked first.
// An empty serviceType is only subject to the count rule.
func (r CapacityRecord) Check(serviceType string, limits CapacityLimits) error {
	if r.Count >= limits.MaxBookings {
		return ErrSlotFull
	}
	if serviceType != "" && len(r.ServiceTypes) >= limits.MaxServiceTypes && !r.HasServiceType(serviceType) {
		return ErrServiceTypeLimit
	}
	return nil
}

func (r *CapacityRecord) add(serviceType string) {
	r.Count++
	if serviceType == "" {
		return
	}
	if r.ServiceTypes == nil {
		r.ServiceTypes = make(map[string]struct{})
	}
	r.ServiceTypes[serviceType] = struct{}{}
}

// CapacityLedger groups active appointments by exact start time.
// Appointments at 09:00 and 09:15 never count against each other here even if they overlap.
type CapacityLedger struct {
	records map[types.TimeString]*CapacityRecord
}

// SkippedAppointment an appointment left out of the ledger because its time is malformed
type SkippedAppointment struct {
	Appointment *Appointment
	Err         error
}

// NewCapacityLedger builds the ledger from appointments of a single date.
// Nil entries and cancelled appointments are ignored; appointments with malformed times are returned as skipped.
func NewCapacityLedger(appointments []*Appointment) (*CapacityLedger, []SkippedAppointment) {
	ledger := &CapacityLedger{records: make(map[types.TimeString]*CapacityRecord)}
	var skipped []SkippedAppointment

	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}

		key, err := types.NewTimeStringFromString(a.Time.String())
		if err != nil {
			skipped = append(skipped, SkippedAppointment{
				Appointment: a,
				Err:         fmt.Errorf("appointment %d: %w", a.ID, err),
			})
			continue
		}

		rec, ok := ledger.records[key]
		if !ok {
			rec = &CapacityRecord{}
			ledger.records[key] = rec
		}
		rec.add(a.ServiceType)
	}

	return ledger, skipped
}

// Record returns the tally for a start time; unknown times have an empty record
func (l *CapacityLedger) Record(key types.TimeString) CapacityRecord {
	if l == nil {
		return CapacityRecord{}
	}
	if normalized, err := types.NewTimeStringFromString(key.String()); err == nil {
		key = normalized
	}
	if rec, ok := l.records[key]; ok {
		return *rec
	}
	return CapacityRecord{}
}

// Check applies the capacity rules for one more booking of serviceType at key
func (l *CapacityLedger) Check(key types.TimeString, serviceType string, limits CapacityLimits) error {
	return l.Record(key).Check(serviceType, limits)
}
