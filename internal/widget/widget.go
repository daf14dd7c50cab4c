// Package widget holds the geometry and value mapping of the settings
// panel controls, kept apart from drawing.
package widget

import (
	"fmt"
	"math"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Slider maps a horizontal track onto [Min, Max].
type Slider struct {
	Label  string
	Format string
	Min    float64
	Max    float64
	// Step snaps values when positive.
	Step  float64
	Track Rect
}

// ValueAt returns the value under pointer x, clamped to the range.
func (s Slider) ValueAt(x float64) float64 {
	f := 0.0
	if s.Track.W > 0 {
		f = (x - s.Track.X) / s.Track.W
	}
	f = math.Max(0, math.Min(1, f))
	v := s.Min + f*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Fraction returns where v sits along the track, in [0, 1].
func (s Slider) Fraction(v float64) float64 {
	if s.Max == s.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-s.Min)/(s.Max-s.Min)))
}

// Hit reports whether (x, y) grabs the slider. The hit area extends a few
// pixels above and below the track so a thin track is easy to catch.
func (s Slider) Hit(x, y float64) bool {
	const slop = 8
	r := s.Track
	return Rect{X: r.X - slop, Y: r.Y - slop, W: r.W + 2*slop, H: r.H + 2*slop}.Contains(x, y)
}

// Text formats v with the slider's format.
func (s Slider) Text(v float64) string {
	return fmt.Sprintf(s.Format, v)
}
