package update_appointment_status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (m *MockService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.AppointmentResponse)
	return resp, args.Error(1)
}

func serve(svc AppointmentService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/appointments/"+id+"/status", strings.NewReader(body))
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "approved", id: "7", body: `{"status":"approved"}`, status: http.StatusOK},
		{name: "bad id", id: "seven", body: `{"status":"approved"}`, status: http.StatusBadRequest},
		{name: "empty body", id: "7", body: ``, status: http.StatusBadRequest},
		{name: "unknown status", id: "7", body: `{"status":"archived"}`, status: http.StatusBadRequest},
		{name: "not found", id: "7", body: `{"status":"approved"}`, err: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "terminal", id: "7", body: `{"status":"pending"}`, err: fmt.Errorf("%w: cancelled -> pending", appointments.ErrInvalidTransition), status: http.StatusConflict},
		{name: "internal", id: "7", body: `{"status":"approved"}`, err: errors.New("db"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.err != nil {
				svc.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).
					Return(&models.AppointmentResponse{ID: 7, Status: "approved"}, nil).Maybe()
			}

			rec := serve(svc, tt.id, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
