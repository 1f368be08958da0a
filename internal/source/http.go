package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noah-isme/employee-availability-api/internal/models"
	"github.com/noah-isme/employee-availability-api/internal/scheduler"
)

// maxBodyBytes bounds the dataset payload read from the remote source.
const maxBodyBytes = 8 << 20

// HTTP fetches the dataset as JSON from a URL.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP constructs an HTTP source with a request timeout.
func NewHTTP(url string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTP{url: url, client: &http.Client{Timeout: timeout}}
}

// Locator returns the source URL.
func (s *HTTP) Locator() string { return s.url }

// Fetch downloads and decodes the dataset. Anything but a 200 response carrying at
// least one day is DataNotFound.
func (s *HTTP) Fetch(ctx context.Context) (models.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return models.Dataset{}, s.notFound(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Dataset{}, s.notFound(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Dataset{}, s.notFound(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var data models.Dataset
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&data); err != nil {
		return models.Dataset{}, s.notFound(fmt.Errorf("decode dataset: %w", err))
	}
	if len(data.Days) == 0 {
		return models.Dataset{}, s.notFound(errors.New("no work days"))
	}
	return data, nil
}

func (s *HTTP) notFound(err error) error {
	return &scheduler.DataNotFoundError{Source: s.url, Err: err}
}
