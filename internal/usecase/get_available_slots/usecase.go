package get_available_slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	busyPeriods     BusyPeriods
	limits          domain.CapacityLimits
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	busyPeriods BusyPeriods,
	limits domain.CapacityLimits,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		busyPeriods:     busyPeriods,
		limits:          limits,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, serviceType=%q",
		dateStr, req.DurationMinutes, req.ServiceType)

	// 2. Параллельно собираем расписание, записи и события календаря
	var (
		settings             []domain.WorkDaySetting
		appointments         []*domain.Appointment
		appointmentIntervals []domain.BusyInterval
		calendarIntervals    []domain.BusyInterval
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		settings, err = uc.scheduleRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get work schedule: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		appointments, err = uc.appointmentRepo.GetActiveByDate(gctx, req.Date)
		if err != nil {
			return fmt.Errorf("failed to get appointments: %v", err)
		}
		appointmentIntervals = uc.busyPeriods.AppointmentIntervals(gctx, req.Date, appointments)
		return nil
	})

	g.Go(func() error {
		// Календарь деградирует сам, ошибок не возвращает
		calendarIntervals = uc.busyPeriods.CalendarIntervals(gctx, req.Date)
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Определяем рабочее окно на дату
	window := domain.NewWorkSchedule(settings).Resolve(req.Date)
	if !window.Open {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s (%s)", dateStr, req.Date.Weekday())
		uc.metrics.ObserveSlotQuery(false, 0)
		return &Response{Date: req.Date, Slots: []types.TimeString{}}, nil
	}

	// 4. Строим журнал вместимости по точному времени начала
	ledger, skipped := domain.NewCapacityLedger(appointments)
	for _, s := range skipped {
		uc.logger.Warn("GetAvailableSlots: skipping appointment with malformed time: %v", s.Err)
	}

	// 5. Обходим сетку слотов
	busy := make([]domain.BusyInterval, 0, len(calendarIntervals)+len(appointmentIntervals))
	busy = append(busy, calendarIntervals...)
	busy = append(busy, appointmentIntervals...)

	slots := generateSlots(window, req.DurationMinutes, busy, ledger, req.ServiceType, uc.limits)

	uc.metrics.ObserveSlotQuery(true, len(slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s (busy intervals: %d)",
		len(slots), dateStr, len(busy))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
