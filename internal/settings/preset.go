package settings

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// preset is the TOML shape of a settings file. Pointer fields tell a
// missing key apart from a zero value.
type preset struct {
	IsEnabled     *bool    `toml:"isEnabled"`
	SparkColorHex *string  `toml:"sparkColorHex"`
	SparkSize     *float64 `toml:"sparkSize"`
	SparkRadius   *float64 `toml:"sparkRadius"`
	SparkCount    *int     `toml:"sparkCount"`
	Duration      *float64 `toml:"duration"`
	ExtraScale    *float64 `toml:"extraScale"`
	ClickSound    *bool    `toml:"clickSound"`
}

// ReadPreset decodes a TOML preset. Keys absent from the file keep their
// defaults and numeric values are clamped to their slider ranges.
func ReadPreset(r io.Reader) (Values, error) {
	var p preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Values{}, fmt.Errorf("decode preset: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Values{}, fmt.Errorf("%w: %q", ErrUnknownKey, undec[0].String())
	}

	v := Defaults()
	if p.IsEnabled != nil {
		v.Enabled = *p.IsEnabled
	}
	if p.SparkColorHex != nil {
		v.Color = ParseHex(*p.SparkColorHex)
	}
	if p.SparkSize != nil {
		v.ParticleSize = *p.SparkSize
	}
	if p.SparkRadius != nil {
		v.Radius = *p.SparkRadius
	}
	if p.SparkCount != nil {
		v.ParticleCount = *p.SparkCount
	}
	if p.Duration != nil {
		v.DurationMs = *p.Duration
	}
	if p.ExtraScale != nil {
		v.Scale = *p.ExtraScale
	}
	if p.ClickSound != nil {
		v.ClickSound = *p.ClickSound
	}
	return Clamp(v), nil
}

// WritePreset encodes v as a TOML preset.
func WritePreset(w io.Writer, v Values) error {
	hex := v.Color.Hex()
	p := preset{
		IsEnabled:     &v.Enabled,
		SparkColorHex: &hex,
		SparkSize:     &v.ParticleSize,
		SparkRadius:   &v.Radius,
		SparkCount:    &v.ParticleCount,
		Duration:      &v.DurationMs,
		ExtraScale:    &v.Scale,
		ClickSound:    &v.ClickSound,
	}
	return toml.NewEncoder(w).Encode(p)
}
