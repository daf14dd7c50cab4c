// Package playback plays the click tick on the default audio device.
package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/clickspark/internal/config"
	"github.com/iburimskiy/clickspark/internal/sound"
)

// Player initializes the speaker on first use.
type Player struct {
	sr   beep.SampleRate
	once sync.Once
	err  error
}

func NewPlayer() *Player {
	return &Player{sr: beep.SampleRate(config.SoundSampleRate)}
}

// Tick plays one tick without waiting for it to finish.
func (p *Player) Tick() error {
	p.once.Do(func() {
		if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
			p.err = fmt.Errorf("init speaker: %w", err)
		}
	})
	if p.err != nil {
		return p.err
	}
	speaker.Play(sound.Tick(p.sr))
	return nil
}
