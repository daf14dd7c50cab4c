package render

import (
	"testing"
	"time"

	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/spark"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time { return c.t }

func TestLoop_SweepsAfterDrawnFrame(t *testing.T) {
	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := settings.New(scenarioValues())
	engine := spark.NewEngine(s, spark.WithClock(clock.Now))
	loop := NewLoop(engine, s, clock.Now)

	start := clock.t
	engine.Trigger(spark.Point{X: 100, Y: 100})

	// First tick has no earlier frame to sweep for.
	if segs := loop.Tick(); len(segs) != 4 {
		t.Fatalf("tick at creation: %d segments, want 4", len(segs))
	}

	clock.t = start.Add(200 * time.Millisecond)
	if segs := loop.Tick(); len(segs) != 4 {
		t.Fatalf("tick at +200ms: %d segments, want 4", len(segs))
	}

	// Expired at this frame: nothing drawn, but the sweep for this
	// timestamp has not run yet.
	clock.t = start.Add(400 * time.Millisecond)
	if segs := loop.Tick(); len(segs) != 0 {
		t.Errorf("tick at +400ms: %d segments, want 0", len(segs))
	}
	if engine.Len() != 4 {
		t.Errorf("Len() = %d before next tick, want 4 (sweep lags one frame)", engine.Len())
	}

	clock.t = start.Add(416 * time.Millisecond)
	loop.Tick()
	if engine.Len() != 0 {
		t.Errorf("Len() = %d after next tick, want 0", engine.Len())
	}
}

func TestLoop_ReadsSettingsEachTick(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0)}
	s := settings.New(scenarioValues())
	engine := spark.NewEngine(s, spark.WithClock(clock.Now))
	loop := NewLoop(engine, s, clock.Now)

	engine.Trigger(spark.Point{})
	clock.t = clock.t.Add(200 * time.Millisecond)
	if segs := loop.Tick(); len(segs) != 4 {
		t.Fatalf("%d segments, want 4", len(segs))
	}

	s.Update(func(v *settings.Values) { v.DurationMs = 100 })
	if segs := loop.Tick(); len(segs) != 0 {
		t.Errorf("%d segments after shrinking duration, want 0", len(segs))
	}
}
