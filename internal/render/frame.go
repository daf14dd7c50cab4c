// Package render turns the live spark set into line segments. It does no
// drawing itself: Frame is a pure function of sparks, settings and time.
package render

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/clickspark/internal/config"
	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/spark"
)

// Segment is one stroke to draw.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	Color  color.NRGBA
}

// Ease is the ease-out curve p(2-p). It maps [0,1] onto [0,1], starting
// fast and ending slow.
func Ease(p float64) float64 {
	p = clamp01(p)
	return p * (2 - p)
}

// Frame computes the segments for every spark that has not expired at
// now. It appends to dst and returns the extended slice.
func Frame(dst []Segment, sparks []spark.Spark, v settings.Values, now time.Time) []Segment {
	d := v.Duration()
	if d <= 0 {
		return dst
	}
	durationSec := d.Seconds()
	c := v.Color.NRGBA()

	for _, s := range sparks {
		if s.Expired(now, d) {
			continue
		}
		elapsed := s.Elapsed(now).Seconds()
		if elapsed < 0 {
			// created after this frame's timestamp
			elapsed = 0
		}

		eased := Ease(elapsed / durationSec)
		dist := eased * v.Radius * v.Scale
		length := v.ParticleSize * (1 - eased)

		cosA, sinA := math.Cos(s.Angle), math.Sin(s.Angle)
		dst = append(dst, Segment{
			X0:    s.Position.X + dist*cosA,
			Y0:    s.Position.Y + dist*sinA,
			X1:    s.Position.X + (dist+length)*cosA,
			Y1:    s.Position.Y + (dist+length)*sinA,
			Width: config.StrokeWidth,
			Color: c,
		})
	}
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
