package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/items"
)

// itemServer is an in-memory item API.
type itemServer struct {
	mu     sync.Mutex
	items  []items.Item
	nextID int64
	fail   bool
}

func newItemServer(t *testing.T) (*itemServer, *httptest.Server) {
	t.Helper()
	s := &itemServer{
		items: []items.Item{
			{ID: 1, Title: "banana"},
			{ID: 2, Title: "Apple"},
			{ID: 3, Title: "cherry"},
		},
		nextID: 3,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "maintenance"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": s.items})
	})
	mux.HandleFunc("POST /api/items", func(w http.ResponseWriter, r *http.Request) {
		var d items.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID++
		it := items.Item{ID: s.nextID, Title: d.Title}
		s.items = append(s.items, it)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(it)
	})
	mux.HandleFunc("DELETE /api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx := items.Index(s.items, id); idx >= 0 {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return s, srv
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, tui runTUI, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--prefs", filepath.Join(dir, "prefs.toml"),
	}
	if tui == nil {
		tui = func(context.Context, app.Options) error {
			t.Fatal("interactive UI started unexpectedly")
			return nil
		}
	}
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), tui, append(base, args...), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestListSortsByTitle(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "ls")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "ID  TITLE\n2   Apple\n1   banana\n3   cherry\n", res.stdout)
}

func TestListSearchAndDescending(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "ls", "--search", "AN", "--desc")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "ID  TITLE\n1   banana\n", res.stdout)

	res = run(t, nil, "--api", srv.URL, "ls", "--desc")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "ID  TITLE\n3   cherry\n1   banana\n2   Apple\n", res.stdout)
}

func TestListOrderFlag(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "ls", "--order", "DESC")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "ID  TITLE\n3   cherry\n1   banana\n2   Apple\n", res.stdout)

	res = run(t, nil, "--api", srv.URL, "ls", "--order", "sideways")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, `invalid --order "sideways"`)
}

func TestListJSON(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "ls", "--json", "--search", "zzz")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.JSONEq(t, `[]`, res.stdout)

	res = run(t, nil, "--api", srv.URL, "ls", "--json")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	var got []items.Item
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, []items.Item{{ID: 2, Title: "Apple"}, {ID: 1, Title: "banana"}, {ID: 3, Title: "cherry"}}, got)
}

func TestListFetchFailure(t *testing.T) {
	s, srv := newItemServer(t)
	s.fail = true

	res := run(t, nil, "--api", srv.URL, "ls")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "maintenance")
	assert.Empty(t, res.stdout)
}

func TestAddJoinsArguments(t *testing.T) {
	s, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "add", "Buy", "more", "coffee")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "Created item 4: Buy more coffee\n", res.stdout)
	assert.Equal(t, "Buy more coffee", s.items[len(s.items)-1].Title)
}

func TestAddBlankTitleIsUsageError(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "add", "   ")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "title")
}

func TestRemove(t *testing.T) {
	s, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "rm", "2")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "Deleted item 2\n", res.stdout)
	assert.Equal(t, -1, items.Index(s.items, 2))
}

func TestRemoveUnknownID(t *testing.T) {
	_, srv := newItemServer(t)

	res := run(t, nil, "--api", srv.URL, "rm", "99")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "item not in list")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad id", []string{"rm", "abc"}},
		{"missing id", []string{"rm"}},
		{"unknown flag", []string{"ls", "--bogus"}},
		{"unknown command", []string{"frobnicate"}},
		{"add without title", []string{"add"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, tt.args...)
			assert.Equal(t, exitUsage, res.code, res.stderr)
			assert.Contains(t, res.stderr, "roster --help")
		})
	}
}

func TestVersion(t *testing.T) {
	res := run(t, nil, "version")
	require.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "roster dev\n", res.stdout)
}

func TestRootStartsTUI(t *testing.T) {
	var got app.Options
	tui := func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	}

	res := run(t, tui, "--api", "http://example.test:1")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "http://example.test:1", got.APIURL)
	assert.NotEmpty(t, got.ConfigPath)
	assert.NotEmpty(t, got.PrefsPath)

	failing := func(context.Context, app.Options) error { return errors.New("no tty") }
	res = run(t, failing)
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "no tty")
}
