// Package panel is the settings window: an on/off toggle, the spark color
// and one slider per numeric setting. Every committed edit is clamped,
// applied in memory and saved to the store.
package panel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/clickspark/internal/config"
	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/widget"
)

// Saver persists committed settings.
type Saver interface {
	Save(ctx context.Context, v settings.Values) error
}

type sliderControl struct {
	widget.Slider
	get func(v settings.Values) float64
	set func(v *settings.Values, x float64)
}

type pickResult struct {
	color settings.Color
	ok    bool
}

type card struct {
	title string
	rect  widget.Rect
}

type Panel struct {
	done     <-chan struct{}
	settings *settings.Settings
	store    Saver
	log      *slog.Logger
	fonts    *fonts

	enabledToggle widget.Rect
	soundToggle   widget.Rect
	swatch        widget.Rect
	cards         []card
	sliders       []*sliderControl

	dragging *sliderControl
	picking  bool
	picked   chan pickResult
	lastErr  error
}

// New lays out the panel. The window closes once done is closed or the
// user presses Esc.
func New(done <-chan struct{}, s *settings.Settings, store Saver) (*Panel, error) {
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}

	p := &Panel{
		done:     done,
		settings: s,
		store:    store,
		log:      slog.Default().With("component", "panel"),
		fonts:    fs,
		picked:   make(chan pickResult, 1),
	}
	p.layout()
	return p, nil
}

const (
	rowHeight  = 56.0
	cardInset  = 16.0
	cardGap    = 28.0
	toggleW    = 44.0
	toggleH    = 24.0
	soundRowH  = 40.0
	headerBase = 100.0
)

func (p *Panel) layout() {
	const pad = config.PanelPadding
	width := float64(config.PanelWidth) - 2*pad

	p.enabledToggle = widget.Rect{X: config.PanelWidth - 24 - toggleW, Y: 34, W: toggleW, H: toggleH}

	y := headerBase
	appearance := widget.Rect{X: pad, Y: y, W: width, H: 52}
	p.cards = append(p.cards, card{title: "APPEARANCE", rect: appearance})
	p.swatch = widget.Rect{X: appearance.X + appearance.W - cardInset - 44, Y: appearance.Y + 12, W: 44, H: 28}
	y += appearance.H + cardGap

	track := func(row int, top float64) widget.Rect {
		return widget.Rect{X: pad + cardInset, Y: top + cardInset + float64(row)*rowHeight + 32, W: width - 2*cardInset, H: 4}
	}

	particles := widget.Rect{X: pad, Y: y, W: width, H: 3*rowHeight + cardInset}
	p.cards = append(p.cards, card{title: "PARTICLES", rect: particles})
	p.sliders = append(p.sliders,
		&sliderControl{
			Slider: widget.Slider{Label: "Count", Format: "%.0f", Min: config.MinParticleCount, Max: config.MaxParticleCount, Step: 1, Track: track(0, y)},
			get:    func(v settings.Values) float64 { return float64(v.ParticleCount) },
			set:    func(v *settings.Values, x float64) { v.ParticleCount = int(x) },
		},
		&sliderControl{
			Slider: widget.Slider{Label: "Size", Format: "%.0f px", Min: config.MinParticleSize, Max: config.MaxParticleSize, Track: track(1, y)},
			get:    func(v settings.Values) float64 { return v.ParticleSize },
			set:    func(v *settings.Values, x float64) { v.ParticleSize = x },
		},
		&sliderControl{
			Slider: widget.Slider{Label: "Radius", Format: "%.0f px", Min: config.MinRadius, Max: config.MaxRadius, Track: track(2, y)},
			get:    func(v settings.Values) float64 { return v.Radius },
			set:    func(v *settings.Values, x float64) { v.Radius = x },
		},
	)
	y += particles.H + cardGap

	animation := widget.Rect{X: pad, Y: y, W: width, H: 2*rowHeight + cardInset + soundRowH}
	p.cards = append(p.cards, card{title: "ANIMATION", rect: animation})
	p.sliders = append(p.sliders,
		&sliderControl{
			Slider: widget.Slider{Label: "Duration", Format: "%.0f ms", Min: config.MinDurationMs, Max: config.MaxDurationMs, Track: track(0, y)},
			get:    func(v settings.Values) float64 { return v.DurationMs },
			set:    func(v *settings.Values, x float64) { v.DurationMs = x },
		},
		&sliderControl{
			Slider: widget.Slider{Label: "Scale", Format: "%.1fx", Min: config.MinScale, Max: config.MaxScale, Track: track(1, y)},
			get:    func(v settings.Values) float64 { return v.Scale },
			set:    func(v *settings.Values, x float64) { v.Scale = x },
		},
	)
	p.soundToggle = widget.Rect{
		X: animation.X + animation.W - cardInset - toggleW,
		Y: animation.Y + cardInset + 2*rowHeight + (soundRowH-toggleH)/2 - 8,
		W: toggleW,
		H: toggleH,
	}
}

func (p *Panel) Update() error {
	select {
	case <-p.done:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case r := <-p.picked:
		p.picking = false
		if r.ok {
			p.apply(func(v *settings.Values) { v.Color = r.color })
			p.commit()
		}
	default:
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case p.enabledToggle.Contains(x, y):
			p.apply(func(v *settings.Values) { v.Enabled = !v.Enabled })
			p.commit()
		case p.soundToggle.Contains(x, y):
			p.apply(func(v *settings.Values) { v.ClickSound = !v.ClickSound })
			p.commit()
		case p.swatch.Contains(x, y):
			p.pickColor()
		default:
			for _, s := range p.sliders {
				if s.Hit(x, y) {
					p.dragging = s
					break
				}
			}
		}
	}

	if s := p.dragging; s != nil {
		val := s.ValueAt(x)
		p.apply(func(v *settings.Values) { s.set(v, val) })
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.dragging = nil
			p.commit()
		}
	}
	return nil
}

func (p *Panel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.PanelWidth, config.PanelHeight
}

// apply edits the in-memory settings, clamping the result.
func (p *Panel) apply(fn func(v *settings.Values)) {
	p.settings.Update(func(v *settings.Values) {
		fn(v)
		*v = settings.Clamp(*v)
	})
}

func (p *Panel) commit() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := p.store.Save(ctx, p.settings.Snapshot()); err != nil {
		p.log.Error("save settings", "error", err)
		p.lastErr = err
		return
	}
	p.lastErr = nil
}

// pickColor opens the native color dialog off the update goroutine; the
// result arrives on p.picked.
func (p *Panel) pickColor() {
	if p.picking {
		return
	}
	p.picking = true
	cur := p.settings.Snapshot().Color

	go func() {
		c, err := zenity.SelectColor(
			zenity.Title("Spark Color"),
			zenity.Color(cur),
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				p.log.Error("color dialog", "error", err)
			}
			p.picked <- pickResult{}
			return
		}
		p.picked <- pickResult{color: settings.FromColor(c), ok: true}
	}()
}

// Run opens the panel window and blocks until it closes.
func Run(p *Panel) error {
	ebiten.SetWindowSize(config.PanelWidth, config.PanelHeight)
	ebiten.SetWindowTitle("Click Spark")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
