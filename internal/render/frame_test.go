package render

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/spark"
)

const eps = 1e-9

func TestEase(t *testing.T) {
	if Ease(0) != 0 {
		t.Errorf("Ease(0) = %v", Ease(0))
	}
	if Ease(1) != 1 {
		t.Errorf("Ease(1) = %v", Ease(1))
	}
	if Ease(0.5) != 0.75 {
		t.Errorf("Ease(0.5) = %v, want 0.75", Ease(0.5))
	}

	prev := Ease(0)
	for i := 1; i <= 1000; i++ {
		cur := Ease(float64(i) / 1000)
		if cur < prev {
			t.Fatalf("Ease not monotonic at %v: %v < %v", float64(i)/1000, cur, prev)
		}
		prev = cur
	}
}

func scenarioValues() settings.Values {
	v := settings.Defaults()
	v.ParticleCount = 4
	v.ParticleSize = 10
	v.Radius = 15
	v.DurationMs = 400
	v.Scale = 1
	return v
}

func batch(p spark.Point, count int, at time.Time) []spark.Spark {
	out := make([]spark.Spark, count)
	for i := range out {
		out[i] = spark.Spark{
			Position:  p,
			Angle:     2 * math.Pi * float64(i) / float64(count),
			CreatedAt: at,
		}
	}
	return out
}

func TestFrame_Scenario(t *testing.T) {
	v := scenarioValues()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sparks := batch(spark.Point{X: 100, Y: 100}, 4, start)

	segs := Frame(nil, sparks, v, start.Add(200*time.Millisecond))
	if len(segs) != 4 {
		t.Fatalf("len(segs) = %d, want 4", len(segs))
	}

	// distance 11.25, stroke 2.5 along each axis
	want := [][4]float64{
		{111.25, 100, 113.75, 100},
		{100, 111.25, 100, 113.75},
		{88.75, 100, 86.25, 100},
		{100, 88.75, 100, 86.25},
	}
	for i, s := range segs {
		got := [4]float64{s.X0, s.Y0, s.X1, s.Y1}
		for j := range got {
			if math.Abs(got[j]-want[i][j]) > eps {
				t.Errorf("seg[%d] = %v, want %v", i, got, want[i])
				break
			}
		}
		if s.Width != 2.5 {
			t.Errorf("seg[%d].Width = %v, want 2.5", i, s.Width)
		}
		if s.Color != v.Color.NRGBA() {
			t.Errorf("seg[%d].Color = %v", i, s.Color)
		}
	}
}

func TestFrame_ScaleMultipliesDistance(t *testing.T) {
	v := scenarioValues()
	v.Scale = 2
	start := time.Unix(0, 0)
	segs := Frame(nil, batch(spark.Point{}, 4, start), v, start.Add(200*time.Millisecond))

	if math.Abs(segs[0].X0-22.5) > eps || math.Abs(segs[0].X1-25) > eps {
		t.Errorf("seg[0] x = %v..%v, want 22.5..25", segs[0].X0, segs[0].X1)
	}
}

func TestFrame_SkipsExpired(t *testing.T) {
	v := scenarioValues()
	start := time.Unix(100, 0)

	sparks := append(batch(spark.Point{}, 4, start), batch(spark.Point{X: 50}, 4, start.Add(300*time.Millisecond))...)

	now := start.Add(400 * time.Millisecond)
	segs := Frame(nil, sparks, v, now)
	if len(segs) != 4 {
		t.Fatalf("len(segs) = %d, want 4 (first batch expired)", len(segs))
	}
	for _, s := range segs {
		if s.X0 < 30 {
			t.Errorf("segment from expired batch drawn: %+v", s)
		}
	}

	if segs := Frame(nil, sparks, v, start.Add(time.Second)); len(segs) != 0 {
		t.Errorf("len(segs) = %d, want 0", len(segs))
	}
}

func TestFrame_AtCreation(t *testing.T) {
	v := scenarioValues()
	start := time.Unix(0, 0)
	segs := Frame(nil, batch(spark.Point{X: 5, Y: 5}, 4, start), v, start)

	s := segs[0]
	if s.X0 != 5 || s.Y0 != 5 || math.Abs(s.X1-15) > eps {
		t.Errorf("seg[0] = %+v, want (5,5)-(15,5)", s)
	}
}

func TestFrame_AppendsToDst(t *testing.T) {
	v := scenarioValues()
	start := time.Unix(0, 0)
	dst := make([]Segment, 1, 8)
	segs := Frame(dst, batch(spark.Point{}, 4, start), v, start)
	if len(segs) != 5 {
		t.Errorf("len(segs) = %d, want 5", len(segs))
	}
}

func TestFrame_ZeroDuration(t *testing.T) {
	v := scenarioValues()
	v.DurationMs = 0
	start := time.Unix(0, 0)
	if segs := Frame(nil, batch(spark.Point{}, 4, start), v, start); len(segs) != 0 {
		t.Errorf("len(segs) = %d, want 0", len(segs))
	}
}
