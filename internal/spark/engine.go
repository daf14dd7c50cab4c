package spark

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/clickspark/internal/config"
)

// Config is the part of the settings the engine reads. Every call reads
// the current value, so changes apply to sparks already alive.
type Config interface {
	Enabled() bool
	ParticleCount() int
	Duration() time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMaxLive caps the live set; the oldest sparks go first. n <= 0
// removes the cap.
func WithMaxLive(n int) Option {
	return func(e *Engine) { e.maxLive = n }
}

// WithOnTrigger registers fn to run after each batch is added.
func WithOnTrigger(fn func(p Point, count int)) Option {
	return func(e *Engine) { e.onTrigger = fn }
}

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine holds the live sparks. Trigger may be called from an input
// goroutine while the render loop reads Sparks; a reader sees either all
// of a batch or none of it.
type Engine struct {
	cfg       Config
	now       func() time.Time
	maxLive   int
	onTrigger func(Point, int)
	log       *slog.Logger

	mu   sync.RWMutex
	live []Spark
}

// NewEngine creates an engine reading cfg.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		now:     time.Now,
		maxLive: config.MaxLiveSparks,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Trigger adds one batch of sparks at p, evenly spread over a full circle,
// and returns how many were added. It does nothing while disabled.
func (e *Engine) Trigger(p Point) int {
	if !e.cfg.Enabled() {
		return 0
	}
	count := e.cfg.ParticleCount()
	if count <= 0 {
		return 0
	}

	now := e.now()
	batch := make([]Spark, count)
	for i := range batch {
		batch[i] = Spark{
			ID:        uuid.New(),
			Position:  p,
			Angle:     2 * math.Pi * float64(i) / float64(count),
			CreatedAt: now,
		}
	}

	e.mu.Lock()
	e.live = append(e.live, batch...)
	dropped := 0
	if e.maxLive > 0 && len(e.live) > e.maxLive {
		dropped = len(e.live) - e.maxLive
		e.live = append([]Spark(nil), e.live[dropped:]...)
	}
	live := len(e.live)
	e.mu.Unlock()

	e.log.Debug("spark batch", "x", p.X, "y", p.Y, "count", count, "live", live)
	if dropped > 0 {
		e.log.Debug("live set capped", "dropped", dropped)
	}
	if e.onTrigger != nil {
		e.onTrigger(p, count)
	}
	return count
}

// Sweep removes every spark that has lived for at least the configured
// duration as of now, and returns how many were removed.
func (e *Engine) Sweep(now time.Time) int {
	d := e.cfg.Duration()

	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.live[:0]
	for _, s := range e.live {
		if !s.Expired(now, d) {
			kept = append(kept, s)
		}
	}
	removed := len(e.live) - len(kept)
	clear(e.live[len(kept):])
	e.live = kept
	return removed
}

// Sparks returns a copy of the live set, oldest first.
func (e *Engine) Sparks() []Spark {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Spark, len(e.live))
	copy(out, e.live)
	return out
}

// Len returns the size of the live set.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.live)
}
