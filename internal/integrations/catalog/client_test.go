package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/logger"
)

func TestClient_GetService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"silk-press"`, r.URL.Query().Get("$slug"))
		assert.Contains(t, r.URL.Query().Get("query"), `_type == "service"`)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ms":3,"result":{"name":"Silk Press","duration":90,"serviceType":"hair"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok", time.Second, logger.NewNop())

	got, err := client.GetService(context.Background(), "silk-press")

	require.NoError(t, err)
	assert.Equal(t, &Service{Slug: "silk-press", Name: "Silk Press", DurationMinutes: 90, ServiceType: "hair"}, got)
}

func TestClient_GetService_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ms":1,"result":null}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second, logger.NewNop()).GetService(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestClient_GetService_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second, logger.NewNop()).GetService(context.Background(), "x")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetServiceWithGracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	client := NewClient(srv.URL, "", time.Second, logger.NewNop())

	_, err := GetServiceWithGracefulDegradation(context.Background(), client, "x", logger.NewNop())

	assert.ErrorIs(t, err, ErrServiceDegraded)
}
