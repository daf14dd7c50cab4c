// Package sound synthesizes the optional click tick.
package sound

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/clickspark/internal/config"
)

// Tick returns a short sine burst with a quadratic fade-out.
func Tick(sr beep.SampleRate) beep.Streamer {
	n := sr.N(config.TickDuration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(n)
			v := config.TickVolume * env * env * math.Sin(2*math.Pi*config.TickFrequency*t)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}
