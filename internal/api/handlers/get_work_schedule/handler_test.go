package get_work_schedule

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

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/schedule/models"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
)

type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) GetAll(ctx context.Context) ([]domain.WorkDaySetting, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).([]domain.WorkDaySetting)
	return settings, args.Error(1)
}

func (m *MockScheduleRepo) Upsert(ctx context.Context, settings []domain.WorkDaySetting) error {
	return m.Called(ctx, settings).Error(0)
}

func get(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/work-schedule", nil))
	return rec
}

func TestHandle_SevenDaysWithMissingClosed(t *testing.T) {
	updated := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockScheduleRepo)
	repo.On("GetAll", mock.Anything).Return([]domain.WorkDaySetting{
		{Day: "Monday", IsOpen: true, StartTime: "09:00", EndTime: "18:00", UpdatedAt: updated},
		{Day: "Saturday", IsOpen: true, StartTime: "10:00", EndTime: "16:00", UpdatedAt: updated},
	}, nil)

	h := NewHandler(schedule.NewService(repo, logger.NewNop()), logger.NewNop())
	rec := get(h)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Days, 7)

	wantOrder := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, d := range body.Days {
		assert.Equal(t, wantOrder[i], d.Day)
	}

	assert.True(t, body.Days[0].IsOpen)
	assert.Equal(t, "09:00", body.Days[0].StartTime)
	assert.Equal(t, "18:00", body.Days[0].EndTime)
	require.NotNil(t, body.Days[0].UpdatedAt)

	assert.True(t, body.Days[5].IsOpen)
	assert.Equal(t, "10:00", body.Days[5].StartTime)

	for _, i := range []int{1, 2, 3, 4, 6} {
		assert.False(t, body.Days[i].IsOpen, body.Days[i].Day)
		assert.Empty(t, body.Days[i].StartTime)
		assert.Empty(t, body.Days[i].EndTime)
		assert.Nil(t, body.Days[i].UpdatedAt)
	}
}

func TestHandle_NothingConfigured(t *testing.T) {
	repo := new(MockScheduleRepo)
	repo.On("GetAll", mock.Anything).Return([]domain.WorkDaySetting{}, nil)

	rec := get(NewHandler(schedule.NewService(repo, logger.NewNop()), logger.NewNop()))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Days, 7)
	for _, d := range body.Days {
		assert.False(t, d.IsOpen, d.Day)
	}
}

func TestHandle_RepositoryError(t *testing.T) {
	repo := new(MockScheduleRepo)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := get(NewHandler(schedule.NewService(repo, logger.NewNop()), logger.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
