package config

import "time"

const (
	// Overlay stroke
	StrokeWidth = 2.5

	// Live-set cap; oldest sparks are dropped past this
	MaxLiveSparks = 4096

	// Default settings
	DefaultEnabled       = true
	DefaultColorHex      = "#FFFFFF"
	DefaultParticleSize  = 10.0
	DefaultRadius        = 15.0
	DefaultParticleCount = 8
	DefaultDurationMs    = 400.0
	DefaultScale         = 1.0
	DefaultClickSound    = false

	// Slider ranges
	MinParticleSize  = 1.0
	MaxParticleSize  = 30.0
	MinRadius        = 5.0
	MaxRadius        = 100.0
	MinParticleCount = 3
	MaxParticleCount = 20
	MinDurationMs    = 100.0
	MaxDurationMs    = 2000.0
	MinScale         = 0.5
	MaxScale         = 5.0

	// Panel window
	PanelWidth   = 380
	PanelHeight  = 620
	PanelPadding = 20

	// Input
	PointerPollInterval = 8 * time.Millisecond
	DedupWindow         = 30 * time.Millisecond

	// Store watcher
	WatchInterval = 250 * time.Millisecond

	// Click tick sound
	SoundSampleRate = 44100
	TickDuration    = 40 * time.Millisecond
	TickFrequency   = 1800.0
	TickVolume      = 0.25
)
