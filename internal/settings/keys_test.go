package settings

import (
	"errors"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	v := Values{
		Enabled:       false,
		Color:         ParseHex("#2AABEE"),
		ParticleSize:  12.5,
		Radius:        40,
		ParticleCount: 11,
		DurationMs:    750,
		Scale:         2.5,
		ClickSound:    true,
	}
	got, err := Decode(v.Encode())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != v {
		t.Errorf("Decode(Encode()) = %+v, want %+v", got, v)
	}
}

func TestDecode_MissingKeysUseDefaults(t *testing.T) {
	got, err := Decode(map[string]string{KeyCount: "5"})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := Defaults()
	want.ParticleCount = 5
	if got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
}

func TestDecode_BadValuesReported(t *testing.T) {
	got, err := Decode(map[string]string{
		KeyCount:   "many",
		KeyRadius:  "wide",
		KeyColor:   "not-a-color",
		KeyEnabled: "false",
	})
	if err == nil {
		t.Fatal("Decode() error = nil, want parse errors")
	}
	want := Defaults()
	want.Enabled = false
	if got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
}

func TestSetKey_Unknown(t *testing.T) {
	v := Defaults()
	err := v.SetKey("sparkShape", "star")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("SetKey() error = %v, want ErrUnknownKey", err)
	}
}
