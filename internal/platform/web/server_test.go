package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ramadhan-rush/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rush.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewServer(store, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s error = %v", url, err)
		}
	}
	return resp.StatusCode
}

func addRuns(t *testing.T, store *storage.Store) storage.Run {
	t.Helper()
	var best storage.Run
	for _, r := range []struct {
		profile, difficulty string
		score               int
	}{
		{"amir", "casual", 120},
		{"amir", "hard", 900},
		{"siti", "casual", 300},
	} {
		run, err := store.AddRun(r.profile, r.difficulty, r.score, 3)
		if err != nil {
			t.Fatalf("AddRun() error = %v", err)
		}
		if r.score == 900 {
			best = run
		}
	}
	return best
}

func TestTopRuns(t *testing.T) {
	srv, store := newTestServer(t)
	addRuns(t, store)

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{"all", "", []int{900, 300, 120}},
		{"casual only", "?difficulty=casual", []int{300, 120}},
		{"limited", "?limit=1", []int{900}},
		{"unknown difficulty", "?difficulty=nightmare", []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var runs []storage.Run
			if code := getJSON(t, srv.URL+"/runs"+tc.query, &runs); code != http.StatusOK {
				t.Fatalf("status = %d, expected 200", code)
			}
			if len(runs) != len(tc.expected) {
				t.Fatalf("len(runs) = %d, expected %d", len(runs), len(tc.expected))
			}
			for i, want := range tc.expected {
				if runs[i].Score != want {
					t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
				}
			}
		})
	}
}

func TestBadLimit(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-3"} {
		if code := getJSON(t, srv.URL+"/runs"+q, nil); code != http.StatusBadRequest {
			t.Errorf("GET /runs%s status = %d, expected 400", q, code)
		}
	}
}

func TestRunByID(t *testing.T) {
	srv, store := newTestServer(t)
	best := addRuns(t, store)

	var run storage.Run
	if code := getJSON(t, srv.URL+"/runs/"+best.RunID, &run); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}
	if run.Score != 900 || run.Profile != "amir" {
		t.Errorf("run = %+v, expected amir's 900", run)
	}

	if code := getJSON(t, srv.URL+"/runs/not-a-uuid", nil); code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d, expected 400", code)
	}
	if code := getJSON(t, srv.URL+"/runs/"+uuid.NewString(), nil); code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, expected 404", code)
	}
}

func TestProfileRuns(t *testing.T) {
	srv, store := newTestServer(t)
	addRuns(t, store)

	var runs []storage.Run
	if code := getJSON(t, srv.URL+"/profiles/amir/runs", &runs); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}
	if len(runs) != 2 {
		t.Errorf("len(runs) = %d, expected 2", len(runs))
	}
	for _, r := range runs {
		if r.Profile != "amir" {
			t.Errorf("run of %q in amir's history", r.Profile)
		}
	}
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t)
	addRuns(t, store)

	var stats map[string]storage.Stats
	if code := getJSON(t, srv.URL+"/stats", &stats); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}
	if got := stats["casual"].HighScore; got != 300 {
		t.Errorf("casual high score = %d, expected 300", got)
	}
	if got := stats["hard"].RunsCount; got != 1 {
		t.Errorf("hard runs = %d, expected 1", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/runs", "application/json", nil)
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST /runs status = %d, expected 405", resp.StatusCode)
	}
}
