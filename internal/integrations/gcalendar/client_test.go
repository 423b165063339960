package gcalendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
)

const eventsPayload = `{
  "items": [
    {"id": "timed", "status": "confirmed",
     "start": {"dateTime": "2024-06-03T11:00:00Z"}, "end": {"dateTime": "2024-06-03T12:30:00Z"}},
    {"id": "holiday", "status": "confirmed",
     "start": {"date": "2024-06-03"}, "end": {"date": "2024-06-04"}},
    {"id": "gone", "status": "cancelled",
     "start": {"dateTime": "2024-06-03T09:00:00Z"}, "end": {"dateTime": "2024-06-03T10:00:00Z"}},
    {"id": "free", "status": "confirmed", "transparency": "transparent",
     "start": {"dateTime": "2024-06-03T15:00:00Z"}, "end": {"dateTime": "2024-06-03T16:00:00Z"}}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return NewClientWithService(svc, "primary", time.UTC, logger.NewNop())
}

func TestClient_ListBusyEvents(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, from.Format(time.RFC3339), r.URL.Query().Get("timeMin"))
		assert.Equal(t, to.Format(time.RFC3339), r.URL.Query().Get("timeMax"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsPayload))
	})

	events, err := client.ListBusyEvents(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "timed", events[0].ID)
	assert.False(t, events[0].AllDay)
	assert.Equal(t, time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, 6, 3, 12, 30, 0, 0, time.UTC), events[0].End)

	assert.Equal(t, "holiday", events[1].ID)
	assert.True(t, events[1].AllDay)
	assert.Equal(t, from, events[1].Start)
	assert.Equal(t, to, events[1].End)
}

func TestClient_ListBusyEvents_SkipsMalformedEvent(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "items": [
    {"id": "workshop", "status": "confirmed",
     "start": {"dateTime": "2024-06-03T09:00:00Z"}, "end": {"dateTime": "2024-06-03T17:00:00Z"}},
    {"id": "broken", "status": "confirmed",
     "start": {"dateTime": "soon"}, "end": {"dateTime": "2024-06-03T12:00:00Z"}},
    {"id": "no-end", "status": "confirmed",
     "start": {"dateTime": "2024-06-03T13:00:00Z"}}
  ]
}`))
	})

	events, err := client.ListBusyEvents(context.Background(), from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "workshop", events[0].ID)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC), events[0].End)
}

func TestClient_ListBusyEvents_DateTimeWithoutOffset(t *testing.T) {
	accra := time.FixedZone("GMT", 0)
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, accra)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "items": [
    {"id": "local", "status": "confirmed",
     "start": {"dateTime": "2024-06-03T11:00:00", "timeZone": "UTC"},
     "end": {"dateTime": "2024-06-03T12:00:00", "timeZone": "UTC"}}
  ]
}`))
	})

	events, err := client.ListBusyEvents(context.Background(), from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Start.Equal(time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)))
	assert.True(t, events[0].End.Equal(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)))
}

func TestClient_ListBusyEvents_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	_, err := client.ListBusyEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestTokenSource_RequiresCredentials(t *testing.T) {
	_, err := tokenSource(context.Background(), Credentials{})
	assert.ErrorIs(t, err, ErrCredentials)

	_, err = tokenSource(context.Background(), Credentials{ServiceAccountJSON: []byte("{not json")})
	assert.ErrorIs(t, err, ErrCredentials)

	ts, err := tokenSource(context.Background(), Credentials{ClientID: "id", RefreshToken: "rt"})
	require.NoError(t, err)
	assert.NotNil(t, ts)
}
