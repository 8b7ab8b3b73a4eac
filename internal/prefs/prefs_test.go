package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
	"github.com/Gabolonhez/Portfolio/internal/storage"
)

type failingBackend struct{ err error }

func (f failingBackend) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingBackend) Set(string, string) error         { return f.err }

func TestOpenDefaults(t *testing.T) {
	mem := storage.NewMemory()
	s, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.Get(Language); got != "pt" {
		t.Errorf("language = %q, want pt", got)
	}
	if got := s.Get(Theme); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
	if s.Language() != i18n.PT {
		t.Errorf("Language() = %q", s.Language())
	}
	if mem.Len() != 0 {
		t.Errorf("defaults were persisted: %d keys", mem.Len())
	}
}

func TestOpenReadsStoredValues(t *testing.T) {
	mem := storage.NewMemory()
	mem.Set("preferredLanguage", "en")
	mem.Set("theme", "light")

	s, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Get(Language) != "en" || s.Get(Theme) != "light" {
		t.Errorf("got %q/%q", s.Get(Language), s.Get(Theme))
	}
}

func TestOpenIgnoresUnrecognizedValues(t *testing.T) {
	mem := storage.NewMemory()
	mem.Set("preferredLanguage", "fr")
	mem.Set("theme", "sepia")

	s, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Get(Language) != "pt" || s.Get(Theme) != "dark" {
		t.Errorf("got %q/%q, want defaults", s.Get(Language), s.Get(Theme))
	}
}

func TestOpenBackendError(t *testing.T) {
	boom := errors.New("disk gone")
	if _, err := Open(failingBackend{err: boom}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestSetValidates(t *testing.T) {
	s, _ := Open(storage.NewMemory())

	tests := []struct {
		kind    Kind
		value   string
		wantErr error
	}{
		{Language, "en", nil},
		{Language, "es", ErrInvalidValue},
		{Theme, "light", nil},
		{Theme, "", ErrInvalidValue},
		{Kind("font"), "serif", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"="+tt.value, func(t *testing.T) {
			err := s.Set(tt.kind, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Set err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	db, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	s, err := Open(db)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set(Language, "en"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := s.Toggle(Theme); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	db.Close()

	db, err = storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	s, err = Open(db)
	if err != nil {
		t.Fatalf("Open after reopen: %v", err)
	}
	if s.Get(Language) != "en" || s.Get(Theme) != "light" {
		t.Errorf("after reopen %q/%q, want en/light", s.Get(Language), s.Get(Theme))
	}
}

func TestSetBackendErrorLeavesValue(t *testing.T) {
	s := &Store{
		backend:  failingBackend{err: errors.New("read-only")},
		values:   map[Kind]string{Language: "pt", Theme: "dark"},
		bindings: map[Kind][]func(string){},
	}
	if err := s.Set(Theme, "light"); err == nil {
		t.Fatal("expected an error")
	}
	if s.Get(Theme) != "dark" {
		t.Errorf("theme = %q after failed Set", s.Get(Theme))
	}
}

func TestToggle(t *testing.T) {
	s, _ := Open(storage.NewMemory())

	var seen []string
	for i := 0; i < 3; i++ {
		v, err := s.Toggle(Theme)
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		seen = append(seen, v)
	}
	if diff := cmp.Diff([]string{"light", "dark", "light"}, seen); diff != "" {
		t.Errorf("toggle sequence (-want +got):\n%s", diff)
	}

	if v, _ := s.Toggle(Language); v != "en" {
		t.Errorf("language toggle = %q", v)
	}
	if _, err := s.Toggle(Kind("x")); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v", err)
	}
}

func TestBind(t *testing.T) {
	s, _ := Open(storage.NewMemory())

	var got []string
	s.Bind(Theme, func(v string) { got = append(got, v) })
	s.Set(Theme, "light")
	s.Set(Language, "en")
	s.Set(Theme, "bogus")

	if diff := cmp.Diff([]string{"dark", "light"}, got); diff != "" {
		t.Errorf("bound values (-want +got):\n%s", diff)
	}
}

func TestBindingMayReadStore(t *testing.T) {
	s, _ := Open(storage.NewMemory())

	var seen []string
	s.Bind(Language, func(string) { seen = append(seen, s.Get(Theme)) })
	if err := s.Set(Language, "en"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if diff := cmp.Diff([]string{"dark", "dark"}, seen); diff != "" {
		t.Errorf("themes seen from binding (-want +got):\n%s", diff)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		if got, err := ParseKind(string(k)); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("colour"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v", err)
	}
	if Key(Language) != "preferredLanguage" || Key(Theme) != "theme" {
		t.Errorf("keys = %q, %q", Key(Language), Key(Theme))
	}
}
