package gcalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
)

const (
	statusCancelled   = "cancelled"
	transparencyFree  = "transparent"
	maxResultsPerPage = 250

	// dateTime без смещения, время задано в поясе события
	localDateTimeLayout = "2006-01-02T15:04:05"
)

// Client клиент Google Calendar для чтения занятых событий
type Client struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	logger     Logger
}

// NewClient создает клиента с OAuth2 авторизацией
func NewClient(ctx context.Context, creds Credentials, calendarID string, timeout time.Duration, loc *time.Location, log Logger) (*Client, error) {
	ts, err := tokenSource(ctx, creds)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = timeout

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrInternal, err)
	}

	return NewClientWithService(svc, calendarID, loc, log), nil
}

// NewClientWithService создает клиента поверх готового calendar.Service
func NewClientWithService(svc *calendar.Service, calendarID string, loc *time.Location, log Logger) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{svc: svc, calendarID: calendarID, loc: loc, logger: log}
}

func tokenSource(ctx context.Context, creds Credentials) (oauth2.TokenSource, error) {
	if len(creds.ServiceAccountJSON) > 0 {
		jwtCfg, err := google.JWTConfigFromJSON(creds.ServiceAccountJSON, calendar.CalendarReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("%w: service account: %v", ErrCredentials, err)
		}
		return jwtCfg.TokenSource(ctx), nil
	}

	if creds.ClientID == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("%w: client id and refresh token are required", ErrCredentials)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}
	return oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken}), nil
}

// ListBusyEvents возвращает события, блокирующие время в [from, to)
// Отмененные и "свободные" (transparent) события пропускаются
// Некорректное событие пропускается с предупреждением, остальные возвращаются
func (c *Client) ListBusyEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	call := c.svc.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResultsPerPage)

	events := make([]Event, 0)
	skipped := 0
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == statusCancelled || item.Transparency == transparencyFree {
				continue
			}

			event, err := c.convert(item)
			if err != nil {
				skipped++
				c.logger.Warn("ListBusyEvents: skipping malformed event: %v", err)
				continue
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}

	if skipped > 0 {
		c.logger.Warn("ListBusyEvents: calendar=%s, %d events skipped, %d kept", c.calendarID, skipped, len(events))
	}

	return events, nil
}

func (c *Client) convert(item *calendar.Event) (Event, error) {
	if item.Start == nil || item.End == nil {
		return Event{}, fmt.Errorf("%w: event %s has no start or end", ErrInvalidResponse, item.Id)
	}

	// Событие на весь день
	if item.Start.Date != "" {
		start, err := time.ParseInLocation(domain.DateFormat, item.Start.Date, c.loc)
		if err != nil {
			return Event{}, fmt.Errorf("%w: event %s start date: %v", ErrInvalidResponse, item.Id, err)
		}
		end := start.AddDate(0, 0, 1)
		if item.End.Date != "" {
			if end, err = time.ParseInLocation(domain.DateFormat, item.End.Date, c.loc); err != nil {
				return Event{}, fmt.Errorf("%w: event %s end date: %v", ErrInvalidResponse, item.Id, err)
			}
		}
		return Event{ID: item.Id, Start: start, End: end, AllDay: true}, nil
	}

	start, err := c.parseDateTime(item.Start)
	if err != nil {
		return Event{}, fmt.Errorf("%w: event %s start: %v", ErrInvalidResponse, item.Id, err)
	}
	end, err := c.parseDateTime(item.End)
	if err != nil {
		return Event{}, fmt.Errorf("%w: event %s end: %v", ErrInvalidResponse, item.Id, err)
	}
	if !end.After(start) {
		return Event{}, fmt.Errorf("%w: event %s does not end after it starts", ErrInvalidResponse, item.Id)
	}

	return Event{ID: item.Id, Start: start.In(c.loc), End: end.In(c.loc)}, nil
}

// parseDateTime разбирает RFC3339; без смещения время берется в поясе события или салона
func (c *Client) parseDateTime(dt *calendar.EventDateTime) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
		return t, nil
	}

	loc := c.loc
	if dt.TimeZone != "" {
		if tz, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = tz
		}
	}
	return time.ParseInLocation(localDateTimeLayout, dt.DateTime, loc)
}
