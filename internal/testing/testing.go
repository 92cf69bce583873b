// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"tunetutor/internal/models"
	"tunetutor/internal/services"
)

// MockArtistSource is a test double for [services.ArtistDiscoverer] and
// [services.ArtistLookup].
type MockArtistSource struct {
	DiscoverResult *services.DiscoveryResult
	LookupRecords  map[string]*models.ArtistRecord
	LookupErr      error

	mu          sync.Mutex
	discoveries int
	lookups     []string
}

func (m *MockArtistSource) DiscoverArtists(ctx context.Context) *services.DiscoveryResult {
	m.mu.Lock()
	m.discoveries++
	m.mu.Unlock()

	if m.DiscoverResult != nil {
		return m.DiscoverResult
	}
	return &services.DiscoveryResult{Artists: services.FallbackArtists(), Fallback: true}
}

func (m *MockArtistSource) LookupArtist(ctx context.Context, name string) (*models.ArtistRecord, error) {
	m.mu.Lock()
	m.lookups = append(m.lookups, name)
	m.mu.Unlock()

	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	if record, ok := m.LookupRecords[name]; ok {
		return record, nil
	}
	return nil, errors.New("artist not found")
}

// Discoveries returns how many discovery calls were made.
func (m *MockArtistSource) Discoveries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discoveries
}

// Lookups returns the names looked up so far.
func (m *MockArtistSource) Lookups() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lookups...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
