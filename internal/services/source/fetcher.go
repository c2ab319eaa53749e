package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/riordanpawley/salesboard/internal/domain"
)

// maxPayload caps how much of a response body is read
const maxPayload = 16 << 20

// Fetcher retrieves the raw task payload (allows mocking in tests)
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Location names the source for logs and errors
	Location() string
}

// HTTPFetcher GETs the payload from a URL
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch performs the request. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &domain.SourceError{Op: "fetch", Source: f.URL, Message: "invalid request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.SourceError{Op: "fetch", Source: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.SourceError{Op: "fetch", Source: f.URL, Status: resp.StatusCode, Err: domain.ErrBadStatus}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, &domain.SourceError{Op: "fetch", Source: f.URL, Message: "failed to read body", Err: err}
	}
	return data, nil
}

// Location returns the URL
func (f *HTTPFetcher) Location() string {
	return f.URL
}

// FileFetcher reads the payload from a local file
type FileFetcher struct {
	Path string
}

// Fetch reads the file. ctx is only checked before reading.
func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.SourceError{Op: "fetch", Source: f.Path, Err: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &domain.SourceError{Op: "fetch", Source: f.Path, Err: err}
	}
	return data, nil
}

// Location returns the file path
func (f *FileFetcher) Location() string {
	return f.Path
}

// NewFetcher picks an HTTPFetcher for http(s) URLs and a FileFetcher otherwise
func NewFetcher(location string, client *http.Client) (Fetcher, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("failed to create fetcher: %w", domain.ErrNoSource)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPFetcher{URL: location, Client: client}, nil
	default:
		return &FileFetcher{Path: location}, nil
	}
}
