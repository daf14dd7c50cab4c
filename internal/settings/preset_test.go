package settings

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadPreset(t *testing.T) {
	in := `
isEnabled = true
sparkColorHex = "#FF00AA"
sparkCount = 12
duration = 900.0
extraScale = 2.0
`
	v, err := ReadPreset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPreset() error = %v", err)
	}
	want := Defaults()
	want.Color = ParseHex("#FF00AA")
	want.ParticleCount = 12
	want.DurationMs = 900
	want.Scale = 2
	if v != want {
		t.Errorf("ReadPreset() = %+v, want %+v", v, want)
	}
}

func TestReadPreset_Clamps(t *testing.T) {
	v, err := ReadPreset(strings.NewReader("sparkCount = 100\nsparkRadius = 1.0\n"))
	if err != nil {
		t.Fatalf("ReadPreset() error = %v", err)
	}
	if v.ParticleCount != 20 || v.Radius != 5 {
		t.Errorf("count/radius = %d/%v, want 20/5", v.ParticleCount, v.Radius)
	}
}

func TestReadPreset_UnknownKey(t *testing.T) {
	_, err := ReadPreset(strings.NewReader("sparkShape = \"star\"\n"))
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ReadPreset() error = %v, want ErrUnknownKey", err)
	}
}

func TestReadPreset_Malformed(t *testing.T) {
	if _, err := ReadPreset(strings.NewReader("sparkCount = = 3")); err == nil {
		t.Error("ReadPreset() error = nil, want decode error")
	}
}

func TestWritePreset_ReadBack(t *testing.T) {
	v := Defaults()
	v.Color = ParseHex("#123456")
	v.ParticleSize = 7.5
	v.ClickSound = true

	var buf bytes.Buffer
	if err := WritePreset(&buf, v); err != nil {
		t.Fatalf("WritePreset() error = %v", err)
	}
	if !strings.Contains(buf.String(), `sparkColorHex = "#123456"`) {
		t.Errorf("preset missing color line:\n%s", buf.String())
	}

	got, err := ReadPreset(&buf)
	if err != nil {
		t.Fatalf("ReadPreset() error = %v", err)
	}
	if got != v {
		t.Errorf("ReadPreset(WritePreset()) = %+v, want %+v", got, v)
	}
}
