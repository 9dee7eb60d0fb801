package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
)

// stubMonitoringStore records the scope of the last query.
type stubMonitoringStore struct {
	lastScope string
}

func (s *stubMonitoringStore) ForStudent(_ context.Context, _ int64) ([]*models.MonitoringRow, error) {
	s.lastScope = "student"
	return []*models.MonitoringRow{}, nil
}

func (s *stubMonitoringStore) ForLecturer(_ context.Context, _ int64) ([]*models.MonitoringRow, error) {
	s.lastScope = "lecturer"
	return []*models.MonitoringRow{}, nil
}

func (s *stubMonitoringStore) ForPRL(_ context.Context, _ int64) ([]*models.MonitoringRow, error) {
	s.lastScope = "prl"
	return []*models.MonitoringRow{}, nil
}

func (s *stubMonitoringStore) ForPL(_ context.Context, _ int64) ([]*models.MonitoringRow, error) {
	s.lastScope = "pl"
	return []*models.MonitoringRow{}, nil
}

func newMonitoringTestRouter(store services.MonitoringStore) *gin.Engine {
	controller := NewMonitoringController(services.NewMonitoringService(store))
	router := gin.New()
	router.GET("/api/monitoring/:role/:userId", controller.GetMonitoring)
	return router
}

func TestGetMonitoringEndpoint(t *testing.T) {
	store := &stubMonitoringStore{}
	router := newMonitoringTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/monitoring/prl/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "prl", store.lastScope)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}

func TestGetMonitoringEndpointInvalidInput(t *testing.T) {
	store := &stubMonitoringStore{}
	router := newMonitoringTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/monitoring/registrar/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.lastScope)

	req = httptest.NewRequest(http.MethodGet, "/api/monitoring/student/abc", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
