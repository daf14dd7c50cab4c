package input

import (
	"context"
	"sync"
	"time"

	"github.com/iburimskiy/clickspark/internal/spark"
)

// Dedup drops a press at the same point as the previous one when it
// arrives within Window. Two hooks observing one physical click then
// yield a single logical event.
type Dedup struct {
	Source Source
	Window time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d *Dedup) Run(ctx context.Context, h Handler) error {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	var (
		mu     sync.Mutex
		last   spark.Point
		lastAt time.Time
		seen   bool
	)
	return d.Source.Run(ctx, func(p spark.Point) {
		t := now()
		mu.Lock()
		dup := seen && p == last && t.Sub(lastAt) < d.Window
		last, lastAt, seen = p, t, true
		mu.Unlock()

		if !dup {
			h(p)
		}
	})
}

// FlipY converts presses from a bottom-left origin to the overlay's
// top-left origin.
type FlipY struct {
	Source Source
	Height float64
}

func (f *FlipY) Run(ctx context.Context, h Handler) error {
	return f.Source.Run(ctx, func(p spark.Point) {
		h(spark.Point{X: p.X, Y: f.Height - p.Y})
	})
}

// Scale divides press coordinates by Factor, converting physical pixels
// to the overlay's device-independent pixels.
type Scale struct {
	Source Source
	Factor float64
}

func (s *Scale) Run(ctx context.Context, h Handler) error {
	if s.Factor <= 0 || s.Factor == 1 {
		return s.Source.Run(ctx, h)
	}
	return s.Source.Run(ctx, func(p spark.Point) {
		h(spark.Point{X: p.X / s.Factor, Y: p.Y / s.Factor})
	})
}
