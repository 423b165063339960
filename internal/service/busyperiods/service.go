package busyperiods

import (
	"context"
	"errors"
	"time"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/integrations/catalog"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/metrics"
)

// Service собирает занятые интервалы дня из внешнего календаря и существующих записей
type Service struct {
	calendar         CalendarSource
	catalog          ServiceCatalog
	snapshotDuration bool
	metrics          Metrics
	logger           Logger
}

// NewService создает сервис занятых интервалов
// calendar и catalog могут быть nil (интеграция не настроена)
// snapshotDuration - использовать длительность, сохраненную в записи, если она есть
func NewService(
	calendar CalendarSource,
	catalog ServiceCatalog,
	snapshotDuration bool,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		calendar:         calendar,
		catalog:          catalog,
		snapshotDuration: snapshotDuration,
		metrics:          metrics,
		logger:           logger,
	}
}

// CalendarIntervals возвращает занятые интервалы внешнего календаря на дату
// Ошибки календаря не пробрасываются: результат пустой, пишется предупреждение
func (s *Service) CalendarIntervals(ctx context.Context, date time.Time) []domain.BusyInterval {
	if s.calendar == nil {
		return []domain.BusyInterval{}
	}

	dayStart := domain.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.calendar.ListBusyEvents(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Warn("BusyPeriods: calendar unavailable for %s, ignoring external events: %v",
			date.Format(domain.DateFormat), err)
		s.metrics.IncDegraded(metrics.DependencyCalendar)
		return []domain.BusyInterval{}
	}

	intervals := make([]domain.BusyInterval, 0, len(events))
	for _, e := range events {
		// Событие на весь день блокирует весь запрошенный день
		if e.AllDay {
			intervals = append(intervals, domain.BusyInterval{
				Start:  dayStart,
				End:    dayEnd,
				Source: domain.BusySourceCalendar,
			})
			continue
		}

		if !e.Start.Before(e.End) {
			s.logger.Warn("BusyPeriods: skipping calendar event %s with empty range", e.ID)
			continue
		}

		intervals = append(intervals, domain.BusyInterval{
			Start:  e.Start,
			End:    e.End,
			Source: domain.BusySourceCalendar,
		})
	}

	return intervals
}

// AppointmentIntervals возвращает интервалы [время, время+длительность) активных записей
// Записи с некорректным временем пропускаются с предупреждением
func (s *Service) AppointmentIntervals(ctx context.Context, date time.Time, appointments []*domain.Appointment) []domain.BusyInterval {
	intervals := make([]domain.BusyInterval, 0, len(appointments))
	durations := make(map[string]int)

	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}

		start, err := a.Time.OnDate(date)
		if err != nil {
			s.logger.Warn("BusyPeriods: skipping appointment id=%d with malformed time %q: %v", a.ID, a.Time, err)
			continue
		}

		duration := s.resolveDuration(ctx, a, durations)
		intervals = append(intervals, domain.BusyInterval{
			Start:  start,
			End:    start.Add(time.Duration(duration) * time.Minute),
			Source: domain.BusySourceAppointment,
		})
	}

	return intervals
}

// resolveDuration определяет длительность записи
// memo кеширует длительность по slug в пределах одного запроса
func (s *Service) resolveDuration(ctx context.Context, a *domain.Appointment, memo map[string]int) int {
	if s.snapshotDuration && a.DurationMinutes != nil && *a.DurationMinutes > 0 {
		return *a.DurationMinutes
	}

	if d, ok := memo[a.ServiceSlug]; ok {
		return d
	}

	duration := domain.DefaultDurationMinutes
	if s.catalog != nil && a.ServiceSlug != "" {
		service, err := catalog.GetServiceWithGracefulDegradation(ctx, s.catalog, a.ServiceSlug, s.logger)
		switch {
		case err == nil:
			duration = domain.EffectiveDuration(service.DurationMinutes)
		case errors.Is(err, catalog.ErrServiceDegraded):
			s.metrics.IncDegraded(metrics.DependencyCatalog)
		}
	}

	memo[a.ServiceSlug] = duration
	return duration
}
