package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/employee-availability-api/internal/scheduler"
)

const datasetJSON = `{
	"days": [
		{"id": 1, "date": "2025-02-15", "start": "09:00", "end": "21:00"},
		{"id": 2, "date": "2025-02-16", "start": "08:00", "end": "22:00"}
	],
	"timeslots": [
		{"day_id": 1, "start": "09:00", "end": "12:00"},
		{"day_id": 1, "start": "17:30", "end": "20:00"}
	]
}`

func newDatasetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetch(t *testing.T) {
	srv := newDatasetServer(t, http.StatusOK, datasetJSON)
	src := NewHTTP(srv.URL, time.Second)

	data, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, srv.URL, src.Locator())
	require.Len(t, data.Days, 2)
	assert.Equal(t, "2025-02-16", data.Days[1].Date)
	assert.Len(t, data.Timeslots, 2)
}

func TestHTTPFetchNonOK(t *testing.T) {
	srv := newDatasetServer(t, http.StatusNotFound, `{"detail":"missing"}`)
	src := NewHTTP(srv.URL, time.Second)

	_, err := src.Fetch(context.Background())
	var target *scheduler.DataNotFoundError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, srv.URL, target.Source)
	assert.ErrorIs(t, err, scheduler.ErrDataNotFound)
}

func TestHTTPFetchMalformedBody(t *testing.T) {
	srv := newDatasetServer(t, http.StatusOK, `{"days": [`)
	src := NewHTTP(srv.URL, time.Second)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, scheduler.ErrDataNotFound)
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestHTTPFetchEmptyDataset(t *testing.T) {
	for _, body := range []string{`{"days":[]}`, `{}`, `{"days":[],"timeslots":[{"day_id":1,"start":"09:00","end":"10:00"}]}`} {
		srv := newDatasetServer(t, http.StatusOK, body)

		_, err := NewHTTP(srv.URL, time.Second).Fetch(context.Background())
		assert.ErrorIs(t, err, scheduler.ErrDataNotFound, body)
	}
}

func TestHTTPFetchUnreachable(t *testing.T) {
	src := NewHTTP("http://127.0.0.1:1/schedule", 200*time.Millisecond)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, scheduler.ErrDataNotFound)
}
