package settings

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu  sync.Mutex
	rev int64
	v   Values
}

func (f *fakeSource) Revision(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rev, nil
}

func (f *fakeSource) Load(context.Context) (Values, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v, nil
}

func (f *fakeSource) write(v Values) {
	f.mu.Lock()
	f.v = v
	f.rev++
	f.mu.Unlock()
}

func TestWatch_AppliesNewRevision(t *testing.T) {
	src := &fakeSource{v: Defaults()}
	s := New(Defaults())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Watch(ctx, src, s, 5*time.Millisecond)
		close(done)
	}()

	v := Defaults()
	v.ParticleCount = 15
	src.write(v)

	deadline := time.Now().Add(2 * time.Second)
	for s.ParticleCount() != 15 {
		if time.Now().After(deadline) {
			t.Fatal("watcher did not apply new values")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_IgnoresUnchangedRevision(t *testing.T) {
	v := Defaults()
	v.ParticleCount = 4
	src := &fakeSource{v: v}
	s := New(Defaults())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	Watch(ctx, src, s, 5*time.Millisecond)

	if s.ParticleCount() != 8 {
		t.Errorf("ParticleCount() = %d, want 8 (no revision change)", s.ParticleCount())
	}
}
