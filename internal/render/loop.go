package render

import (
	"time"

	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/spark"
)

// Live is the part of the spark engine the render loop needs.
type Live interface {
	Sweep(now time.Time) int
	Sparks() []spark.Spark
}

// Loop produces one frame per tick. Sweeping uses the timestamp of the
// frame already drawn, so a sweep never lands between computing a frame
// and drawing it.
type Loop struct {
	live     Live
	settings *settings.Settings
	now      func() time.Time

	frameAt  time.Time
	segments []Segment
}

func NewLoop(live Live, s *settings.Settings, now func() time.Time) *Loop {
	if now == nil {
		now = time.Now
	}
	return &Loop{live: live, settings: s, now: now}
}

// Tick sweeps for the previous frame and returns the segments of the next.
// The returned slice is reused by the following Tick.
func (l *Loop) Tick() []Segment {
	if !l.frameAt.IsZero() {
		l.live.Sweep(l.frameAt)
	}
	l.frameAt = l.now()
	l.segments = Frame(l.segments[:0], l.live.Sparks(), l.settings.Snapshot(), l.frameAt)
	return l.segments
}
