package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *MetricsService) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMetricsServiceRecords(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/days", http.StatusOK, 5*time.Millisecond)
	m.RecordQuery("free_slots", OutcomeOK)
	m.RecordQuery("free_slots", OutcomeNotFound)
	m.RecordQuery("free_slots", OutcomeOK)
	m.RecordSnapshotLookup(true)
	m.RecordSnapshotLookup(false)
	m.SetDatasetDays(5)

	body := scrape(t, m)
	assert.Contains(t, body, `availability_queries_total{operation="free_slots",outcome="ok"} 2`)
	assert.Contains(t, body, "dataset_snapshot_cache_hits_total 1")
	assert.Contains(t, body, "dataset_snapshot_cache_misses_total 1")
	assert.Contains(t, body, "dataset_days 5")

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.RequestsTotal)
	assert.Equal(t, uint64(3), snap.QueriesTotal)
	assert.Equal(t, 5, snap.DatasetDays)
}

func TestMetricsServiceHandler(t *testing.T) {
	m := NewMetricsService()
	m.RecordQuery("is_available", OutcomeInvalid)

	assert.Contains(t, scrape(t, m), `availability_queries_total{operation="is_available",outcome="invalid"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService

	m.RecordQuery("find_slot", OutcomeOK)
	m.RecordSnapshotLookup(true)
	m.SetDatasetDays(3)
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	assert.Nil(t, m.Registry())
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
}
