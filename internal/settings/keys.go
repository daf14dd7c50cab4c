package settings

import (
	"errors"
	"fmt"
	"strconv"
)

// Persisted key names.
const (
	KeyEnabled    = "isEnabled"
	KeyColor      = "sparkColorHex"
	KeySize       = "sparkSize"
	KeyRadius     = "sparkRadius"
	KeyCount      = "sparkCount"
	KeyDuration   = "duration"
	KeyScale      = "extraScale"
	KeyClickSound = "clickSound"
)

// Keys lists every persisted key in display order.
var Keys = []string{
	KeyEnabled,
	KeyColor,
	KeySize,
	KeyRadius,
	KeyCount,
	KeyDuration,
	KeyScale,
	KeyClickSound,
}

var ErrUnknownKey = errors.New("unknown settings key")

// Encode returns the string form of every key.
func (v Values) Encode() map[string]string {
	return map[string]string{
		KeyEnabled:    strconv.FormatBool(v.Enabled),
		KeyColor:      v.Color.Hex(),
		KeySize:       formatFloat(v.ParticleSize),
		KeyRadius:     formatFloat(v.Radius),
		KeyCount:      strconv.Itoa(v.ParticleCount),
		KeyDuration:   formatFloat(v.DurationMs),
		KeyScale:      formatFloat(v.Scale),
		KeyClickSound: strconv.FormatBool(v.ClickSound),
	}
}

// SetKey parses raw into the field named by key. Colors never fail to
// parse; a malformed hex string becomes White.
func (v *Values) SetKey(key, raw string) error {
	var err error
	switch key {
	case KeyEnabled:
		v.Enabled, err = parseBool(v.Enabled, raw)
	case KeyColor:
		v.Color = ParseHex(raw)
	case KeySize:
		v.ParticleSize, err = parseFloat(v.ParticleSize, raw)
	case KeyRadius:
		v.Radius, err = parseFloat(v.Radius, raw)
	case KeyCount:
		var n int
		n, err = strconv.Atoi(raw)
		if err == nil {
			v.ParticleCount = n
		}
	case KeyDuration:
		v.DurationMs, err = parseFloat(v.DurationMs, raw)
	case KeyScale:
		v.Scale, err = parseFloat(v.Scale, raw)
	case KeyClickSound:
		v.ClickSound, err = parseBool(v.ClickSound, raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

// Decode builds Values from persisted strings. Missing keys keep their
// defaults, as do values that fail to parse; the latter are reported in
// the returned error.
func Decode(m map[string]string) (Values, error) {
	v := Defaults()
	var errs []error
	for _, key := range Keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		if err := v.SetKey(key, raw); err != nil {
			errs = append(errs, err)
		}
	}
	return v, errors.Join(errs...)
}

func parseBool(cur bool, raw string) (bool, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return cur, err
	}
	return b, nil
}

func parseFloat(cur float64, raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return cur, err
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
