// Package httpsource implements ports.Source over a remote JSON catalog.
// A failed fetch returns an error without touching any engine state; the
// caller decides whether and when to retry.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Source fetches a JSON array of catalog records from one URL.
type Source struct {
	url    string
	client *http.Client
}

// New creates a source for the given URL. Timeout zero means 15s, matching
// the original backend's retrieval deadline.
func New(url string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Source{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements ports.Source.
func (s *Source) Fetch(ctx context.Context) ([]ports.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch %s: status %d", s.url, resp.StatusCode)
	}

	var records []ports.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("catalog decode %s: %w", s.url, err)
	}
	return records, nil
}

// Records adapts an already-parsed record list to ports.Source, for callers
// that load embedded or file catalogs through the same Init path.
type Records []ports.Record

// Fetch implements ports.Source.
func (r Records) Fetch(context.Context) ([]ports.Record, error) {
	return r, nil
}
