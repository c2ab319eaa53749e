package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riordanpawley/salesboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFetcher implements Fetcher for testing
type mockFetcher struct {
	output []byte
	err    error
}

func (m *mockFetcher) Fetch(ctx context.Context) ([]byte, error) {
	return m.output, m.err
}

func (m *mockFetcher) Location() string {
	return "mock://tasks"
}

func newTestClient(f Fetcher) *Client {
	c := NewClient(f, 5, slog.Default())
	c.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	c.rng = rand.New(rand.NewPCG(1, 1))
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return c
}

func TestClient_Load(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		fetchErr  error
		wantCount int
		wantErr   bool
		wantOp    string
	}{
		{
			name: "valid response with multiple tasks",
			output: `[
				{"id": "t-1", "title": "Call client", "revenue": 100, "timeTaken": 2, "priority": "High", "status": "Todo"},
				{"id": "t-2", "title": "Demo", "revenue": "450", "timeTaken": 0, "priority": "Low", "status": "Done"}
			]`,
			wantCount: 2,
		},
		{
			name:      "malformed records are kept",
			output:    `[{"title": ""}, 42, null, {"status": "Unknown"}]`,
			wantCount: 4,
		},
		{
			name:      "empty array falls back to seed data",
			output:    `[]`,
			wantCount: 5,
		},
		{
			name:    "object instead of array",
			output:  `{"tasks": []}`,
			wantErr: true,
			wantOp:  "decode",
		},
		{
			name:    "invalid json",
			output:  `[{"title": `,
			wantErr: true,
			wantOp:  "decode",
		},
		{
			name:    "empty body",
			output:  ``,
			wantErr: true,
			wantOp:  "decode",
		},
		{
			name:     "fetch error",
			fetchErr: &domain.SourceError{Op: "fetch", Err: errors.New("connection refused")},
			wantErr:  true,
			wantOp:   "fetch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(&mockFetcher{output: []byte(tt.output), err: tt.fetchErr})

			tasks, err := client.Load(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				var srcErr *domain.SourceError
				require.ErrorAs(t, err, &srcErr)
				assert.Equal(t, tt.wantOp, srcErr.Op)
				assert.Nil(t, tasks)
				return
			}

			require.NoError(t, err)
			assert.Len(t, tasks, tt.wantCount)
		})
	}
}

func TestClient_Load_Sanitizes(t *testing.T) {
	client := newTestClient(&mockFetcher{output: []byte(`[
		{"id": "dup", "title": "  Close deal ", "revenue": "450", "timeTaken": -1, "status": "Done", "createdAt": "2025-05-01T00:00:00Z"},
		{"id": "dup", "title": "", "status": "Unknown"}
	]`)})

	tasks, err := client.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "dup", tasks[0].ID)
	assert.Equal(t, "Close deal", tasks[0].Title)
	assert.Equal(t, 450.0, tasks[0].Revenue)
	assert.Equal(t, 1.0, tasks[0].TimeTaken)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), *tasks[0].CompletedAt)

	assert.Equal(t, "dup-gen1", tasks[1].ID)
	assert.Equal(t, "Untitled 2", tasks[1].Title)
	assert.Equal(t, domain.StatusTodo, tasks[1].Status)
}

func TestHTTPFetcher(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title": "Call client"}]`))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		f := &HTTPFetcher{URL: srv.URL + "/tasks.json", Client: srv.Client()}
		data, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `[{"title": "Call client"}]`, string(data))
	})

	t.Run("non-success status", func(t *testing.T) {
		f := &HTTPFetcher{URL: srv.URL + "/broken.json", Client: srv.Client()}
		_, err := f.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadStatus)

		var srcErr *domain.SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, http.StatusInternalServerError, srcErr.Status)
	})

	t.Run("not found", func(t *testing.T) {
		f := &HTTPFetcher{URL: srv.URL + "/missing.json", Client: srv.Client()}
		_, err := f.Fetch(context.Background())
		assert.ErrorIs(t, err, domain.ErrBadStatus)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f := &HTTPFetcher{URL: srv.URL + "/tasks.json", Client: srv.Client()}
		_, err := f.Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	data, err := (&FileFetcher{Path: path}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = (&FileFetcher{Path: filepath.Join(dir, "nope.json")}).Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFetcher(t *testing.T) {
	f, err := NewFetcher("https://example.com/tasks.json", nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)

	f, err = NewFetcher("data/tasks.json", nil)
	require.NoError(t, err)
	assert.IsType(t, &FileFetcher{}, f)
	assert.Equal(t, "data/tasks.json", f.Location())

	_, err = NewFetcher("", nil)
	assert.ErrorIs(t, err, domain.ErrNoSource)
}
