package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/usecase/get_available_slots"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func TestHandle_Success(t *testing.T) {
	loc := time.FixedZone("GMT", 0)
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, loc)

	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date.Equal(date) && req.DurationMinutes == 90 && req.ServiceType == "braids"
	})).Return(&getAvailableSlots.Response{
		Date:  date,
		Slots: []types.TimeString{"09:00", "09:30"},
	}, nil)

	h := NewHandler(uc, loc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2024-06-03&duration=90&serviceType=braids", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-03", body.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, body.Slots)
	uc.AssertExpectations(t)
}

func TestHandle_EmptyDayReturnsEmptyArray(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:  time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeString{},
	}, nil)

	h := NewHandler(uc, nil, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2024-06-09", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		msg   string
	}{
		{name: "missing date", query: "", msg: msgMissingDate},
		{name: "bad date", query: "date=03-06-2024", msg: msgInvalidDate},
		{name: "bad duration", query: "date=2024-06-03&duration=long", msg: msgInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			h := NewHandler(uc, time.UTC, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.msg)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			h := NewHandler(uc, time.UTC, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2024-06-03&duration=1000", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
