package get_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/service/appointments/models"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.AppointmentResponse)
	return resp, args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		resp   *models.AppointmentResponse
		err    error
		status int
	}{
		{name: "found", path: "/admin/appointments/5", resp: &models.AppointmentResponse{ID: 5}, status: http.StatusOK},
		{name: "not found", path: "/admin/appointments/5", err: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "internal", path: "/admin/appointments/5", err: errors.New("db"), status: http.StatusInternalServerError},
		{name: "bad id", path: "/admin/appointments/abc", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("GetByID", mock.Anything, int64(5)).Return(tt.resp, tt.err).Maybe()

			r := mux.NewRouter()
			r.HandleFunc("/admin/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
