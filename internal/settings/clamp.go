package settings

import (
	"math"

	"github.com/iburimskiy/clickspark/internal/config"
)

// Clamp forces every numeric value into its slider range. The engine and
// renderer never call this; it is applied where values are edited.
func Clamp(v Values) Values {
	v.ParticleSize = clampFloat(v.ParticleSize, config.MinParticleSize, config.MaxParticleSize)
	v.Radius = clampFloat(v.Radius, config.MinRadius, config.MaxRadius)
	v.DurationMs = clampFloat(v.DurationMs, config.MinDurationMs, config.MaxDurationMs)
	v.Scale = clampFloat(v.Scale, config.MinScale, config.MaxScale)
	if v.ParticleCount < config.MinParticleCount {
		v.ParticleCount = config.MinParticleCount
	}
	if v.ParticleCount > config.MaxParticleCount {
		v.ParticleCount = config.MaxParticleCount
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
