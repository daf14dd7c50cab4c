package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_LoadEmptyYieldsDefaults(t *testing.T) {
	s := openTestStore(t)

	v, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v != Defaults() {
		t.Errorf("Load() = %+v, want defaults", v)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	v := Defaults()
	v.Color = ParseHex("#FF8800")
	v.ParticleCount = 17
	v.DurationMs = 1500
	if err := s.Save(ctx, v); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != v {
		t.Errorf("Load() = %+v, want %+v", got, v)
	}
}

func TestStore_RevisionBumpsOnWrite(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	r0, err := s.Revision(ctx)
	if err != nil {
		t.Fatalf("Revision() error = %v", err)
	}
	if err := s.Save(ctx, Defaults()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	r1, _ := s.Revision(ctx)
	if r1 <= r0 {
		t.Errorf("revision after Save = %d, want > %d", r1, r0)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	r2, _ := s.Revision(ctx)
	if r2 <= r1 {
		t.Errorf("revision after Reset = %d, want > %d", r2, r1)
	}
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	v := Defaults()
	v.Enabled = false
	if err := s.Save(ctx, v); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	got, _ := s.Load(ctx)
	if got != Defaults() {
		t.Errorf("Load() after Reset = %+v, want defaults", got)
	}
}

func TestStore_ReopenKeepsValues(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	v := Defaults()
	v.Scale = 3.5
	if err := s.Save(ctx, v); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	got, _ := s.Load(ctx)
	if got.Scale != 3.5 {
		t.Errorf("Scale = %v, want 3.5", got.Scale)
	}
}
