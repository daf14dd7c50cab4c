// Package settings holds the user-tunable spark parameters: the in-memory
// store read by the engine and renderer every frame, its change
// notification, and the SQLite and TOML forms it is persisted in.
package settings

import (
	"sync"
	"time"

	"github.com/iburimskiy/clickspark/internal/config"
)

// Values is one consistent copy of every setting.
type Values struct {
	Enabled       bool
	Color         Color
	ParticleSize  float64
	Radius        float64
	ParticleCount int
	DurationMs    float64
	Scale         float64
	ClickSound    bool
}

// Defaults returns the values a fresh install starts with.
func Defaults() Values {
	return Values{
		Enabled:       config.DefaultEnabled,
		Color:         ParseHex(config.DefaultColorHex),
		ParticleSize:  config.DefaultParticleSize,
		Radius:        config.DefaultRadius,
		ParticleCount: config.DefaultParticleCount,
		DurationMs:    config.DefaultDurationMs,
		Scale:         config.DefaultScale,
		ClickSound:    config.DefaultClickSound,
	}
}

// Duration converts DurationMs to a time.Duration.
func (v Values) Duration() time.Duration {
	return time.Duration(v.DurationMs * float64(time.Millisecond))
}

// Observer receives the values before and after a change.
type Observer func(old, cur Values)

// Settings is the process-wide settings object. It is passed explicitly to
// whoever reads it; reads never block on anything but a short RLock.
type Settings struct {
	mu sync.RWMutex
	v  Values

	obsMu     sync.Mutex
	observers map[uint64]Observer
	nextID    uint64
}

// New creates a Settings holding v.
func New(v Values) *Settings {
	return &Settings{
		v:         v,
		observers: make(map[uint64]Observer),
	}
}

// Snapshot returns a copy of all values.
func (s *Settings) Snapshot() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

func (s *Settings) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Enabled
}

func (s *Settings) ParticleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.ParticleCount
}

func (s *Settings) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Duration()
}

func (s *Settings) ClickSound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.ClickSound
}

// Update mutates the values under the write lock and notifies observers
// if anything changed. Observers run on the caller's goroutine.
func (s *Settings) Update(fn func(v *Values)) {
	s.mu.Lock()
	old := s.v
	fn(&s.v)
	cur := s.v
	s.mu.Unlock()

	if old != cur {
		s.notify(old, cur)
	}
}

// Set replaces all values.
func (s *Settings) Set(v Values) {
	s.Update(func(dst *Values) { *dst = v })
}

// Subscribe registers o and returns a function that removes it.
func (s *Settings) Subscribe(o Observer) (cancel func()) {
	s.obsMu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Settings) notify(old, cur Values) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.obsMu.Unlock()

	for _, o := range observers {
		o(old, cur)
	}
}
