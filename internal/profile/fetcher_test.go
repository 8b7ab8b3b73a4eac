package profile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

const sampleDoc = `{
  "name": "Jane Doe",
  "photo": "me.png",
  "job": "Engineer",
  "location": "Lisbon",
  "phone": "+351 900 000 000",
  "email": "jane@example.com",
  "skills": {"hardSkills": [{"name": "Go", "logo": "go.png", "level": "advanced"}], "softSkills": ["Focus"]},
  "education": [],
  "languages": ["English"],
  "portfolio": [],
  "professionalExperience": []
}`

// recordingSleeper collects requested waits without sleeping.
type recordingSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (r *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waits = append(r.waits, d)
	return ctx.Err()
}

func (r *recordingSleeper) total() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum time.Duration
	for _, w := range r.waits {
		sum += w
	}
	return sum
}

func TestFetchSuccess(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	sl := &recordingSleeper{}
	f := NewFetcher(srv.URL, WithSleeper(sl.sleep))

	res, err := f.Fetch(context.Background(), i18n.EN)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.IsFallback() {
		t.Fatalf("unexpected fallback: %v", res.Cause())
	}
	if gotPath != "/src/data/profileEN.json" {
		t.Errorf("path = %q, want /src/data/profileEN.json", gotPath)
	}
	if res.Document().Name != "Jane Doe" {
		t.Errorf("name = %q", res.Document().Name)
	}
	if len(sl.waits) != 0 {
		t.Errorf("expected no backoff, got %v", sl.waits)
	}
}

func TestFetchAlwaysFailingReturnsFallback(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	sl := &recordingSleeper{}
	f := NewFetcher(srv.URL, WithSleeper(sl.sleep))
	f.MaxAttempts = 3
	f.BaseDelay = 100 * time.Millisecond

	res, err := f.Fetch(context.Background(), i18n.PT)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !res.IsFallback() {
		t.Fatal("expected fallback result")
	}
	if res.Cause() == nil || !strings.Contains(res.Cause().Error(), "status 500") {
		t.Errorf("cause = %v, want status 500", res.Cause())
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if len(sl.waits) != len(want) {
		t.Fatalf("waits = %v, want %v", sl.waits, want)
	}
	for i := range want {
		if sl.waits[i] != want[i] {
			t.Errorf("wait[%d] = %v, want %v", i, sl.waits[i], want[i])
		}
	}
	if sl.total() < f.BaseDelay*(1+2) {
		t.Errorf("cumulative backoff %v below %v", sl.total(), f.BaseDelay*3)
	}

	doc := res.Document()
	if doc.AccordionTitles == nil || doc.AccordionTitles.Skills != "Habilidades" {
		t.Errorf("fallback accordion titles not localized: %+v", doc.AccordionTitles)
	}
	if doc.Skills == nil || doc.Skills.HardSkills == nil || len(doc.Skills.HardSkills) != 0 {
		t.Errorf("fallback skills should be empty, got %+v", doc.Skills)
	}
}

func TestFetchMalformedThenValid(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Write([]byte(`{"name": `))
			return
		}
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	sl := &recordingSleeper{}
	f := NewFetcher(srv.URL, WithSleeper(sl.sleep))

	res, err := f.Fetch(context.Background(), i18n.PT)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.IsFallback() {
		t.Fatalf("unexpected fallback: %v", res.Cause())
	}
	if hits.Load() != 2 {
		t.Errorf("attempts = %d, want 2", hits.Load())
	}
	if len(sl.waits) != 1 || sl.waits[0] != DefaultBaseDelay {
		t.Errorf("waits = %v, want [%v]", sl.waits, DefaultBaseDelay)
	}
}

func TestFetchWrongShapeIsFailure(t *testing.T) {
	payloads := []string{`[]`, `null`, `"text"`, `{"skills": "many"}`}
	for _, p := range payloads {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(p))
		}))
		sl := &recordingSleeper{}
		f := NewFetcher(srv.URL, WithSleeper(sl.sleep))
		f.MaxAttempts = 2

		res, err := f.Fetch(context.Background(), i18n.EN)
		srv.Close()
		if err != nil {
			t.Fatalf("payload %s: Fetch: %v", p, err)
		}
		if !res.IsFallback() {
			t.Errorf("payload %s: expected fallback", p)
		}
	}
}

func TestFetchOversizedBody(t *testing.T) {
	body := `{"name": "` + strings.Repeat("x", maxDocumentBytes) + `"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	sl := &recordingSleeper{}
	f := NewFetcher(srv.URL, WithSleeper(sl.sleep))
	f.MaxAttempts = 1

	res, err := f.Fetch(context.Background(), i18n.PT)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !res.IsFallback() {
		t.Fatal("expected fallback result")
	}
	if !errors.Is(res.Cause(), ErrDocumentTooLarge) {
		t.Errorf("cause = %v, want ErrDocumentTooLarge", res.Cause())
	}
}

func TestFetchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	f := NewFetcher(srv.URL, WithSleeper(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}))

	_, err := f.Fetch(ctx, i18n.PT)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFetchFileURL(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "src", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "profilePT.json"), []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher("file://"+filepath.ToSlash(dir), WithSleeper((&recordingSleeper{}).sleep))
	res, err := f.Fetch(context.Background(), i18n.PT)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.IsFallback() {
		t.Fatalf("unexpected fallback: %v", res.Cause())
	}
	if res.Document().Email != "jane@example.com" {
		t.Errorf("email = %q", res.Document().Email)
	}
}

func TestURL(t *testing.T) {
	f := NewFetcher("https://example.com/site/")
	tests := []struct {
		lang i18n.Lang
		want string
	}{
		{i18n.PT, "https://example.com/site/src/data/profilePT.json"},
		{i18n.EN, "https://example.com/site/src/data/profileEN.json"},
		{"fr", "https://example.com/site/src/data/profileEN.json"},
	}
	for _, tt := range tests {
		if got := f.URL(tt.lang); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
