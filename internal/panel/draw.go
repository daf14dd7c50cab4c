package panel

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/iburimskiy/clickspark/internal/config"
	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/widget"
)

var (
	bgTop      = settings.ParseHex("#1A1A2E").NRGBA()
	bgBottom   = settings.ParseHex("#16213E").NRGBA()
	toggleOn   = color.NRGBA{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF}
	toggleOff  = color.NRGBA{R: 0x55, G: 0x55, B: 0x60, A: 0xFF}
	cardFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	cardStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	dimText    = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	labelText  = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	trackColor = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	valueBox   = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	errorText  = color.NRGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
)

func (p *Panel) Draw(screen *ebiten.Image) {
	v := p.settings.Snapshot()

	p.drawBackground(screen)

	text.Draw(screen, "Click Spark", p.fonts.title, 24, 50, color.White)
	text.Draw(screen, "System-wide cursor effects", p.fonts.subtitle, 24, 68, dimText)
	drawToggle(screen, p.enabledToggle, v.Enabled)

	for _, c := range p.cards {
		text.Draw(screen, c.title, p.fonts.caption, int(c.rect.X), int(c.rect.Y)-8, dimText)
		vector.DrawFilledRect(screen, float32(c.rect.X), float32(c.rect.Y), float32(c.rect.W), float32(c.rect.H), cardFill, false)
		vector.StrokeRect(screen, float32(c.rect.X), float32(c.rect.Y), float32(c.rect.W), float32(c.rect.H), 1, cardStroke, false)
	}

	appearance := p.cards[0].rect
	text.Draw(screen, "Spark Color", p.fonts.label, int(appearance.X+cardInset), int(appearance.Y+31), labelText)
	vector.DrawFilledRect(screen, float32(p.swatch.X), float32(p.swatch.Y), float32(p.swatch.W), float32(p.swatch.H), v.Color.NRGBA(), false)
	vector.StrokeRect(screen, float32(p.swatch.X), float32(p.swatch.Y), float32(p.swatch.W), float32(p.swatch.H), 1, dimText, false)

	for _, s := range p.sliders {
		p.drawSlider(screen, s, s.get(v))
	}

	text.Draw(screen, "Click sound", p.fonts.label, int(p.cards[2].rect.X+cardInset), int(p.soundToggle.Y+17), labelText)
	drawToggle(screen, p.soundToggle, v.ClickSound)

	footer := "Inspired by Reactbits"
	w := text.BoundString(p.fonts.subtitle, footer).Dx()
	text.Draw(screen, footer, p.fonts.subtitle, (config.PanelWidth-w)/2, config.PanelHeight-14, dimText)

	if p.lastErr != nil {
		msg := truncate(p.fonts.subtitle, "Error: "+p.lastErr.Error(), config.PanelWidth-24)
		text.Draw(screen, msg, p.fonts.subtitle, 12, config.PanelHeight-34, errorText)
	}
}

func (p *Panel) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.PanelHeight; y++ {
		t := float64(y) / float64(config.PanelHeight)
		c := color.NRGBA{
			R: lerp8(bgTop.R, bgBottom.R, t),
			G: lerp8(bgTop.G, bgBottom.G, t),
			B: lerp8(bgTop.B, bgBottom.B, t),
			A: 0xFF,
		}
		vector.StrokeLine(screen, 0, float32(y)+0.5, config.PanelWidth, float32(y)+0.5, 1, c, false)
	}
}

func (p *Panel) drawSlider(screen *ebiten.Image, s *sliderControl, val float64) {
	r := s.Track
	labelY := int(r.Y) - 14
	text.Draw(screen, s.Label, p.fonts.label, int(r.X), labelY, labelText)

	// value badge, right-aligned over the track
	str := s.Text(val)
	b := text.BoundString(p.fonts.value, str)
	bx := r.X + r.W - float64(b.Dx()) - 6
	vector.DrawFilledRect(screen, float32(bx-6), float32(labelY-14), float32(b.Dx()+12), 18, valueBox, false)
	text.Draw(screen, str, p.fonts.value, int(bx), labelY, color.White)

	f := s.Fraction(val)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), trackColor, false)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W*f), float32(r.H), color.White, false)

	knobR := float32(7)
	if p.dragging == s {
		knobR = 8
	}
	vector.DrawFilledCircle(screen, float32(r.X+r.W*f), float32(r.Y+r.H/2), knobR, color.White, true)
}

func drawToggle(screen *ebiten.Image, r widget.Rect, on bool) {
	bg := toggleOff
	if on {
		bg = toggleOn
	}
	rad := float32(r.H / 2)
	vector.DrawFilledRect(screen, float32(r.X)+rad, float32(r.Y), float32(r.W)-2*rad, float32(r.H), bg, false)
	vector.DrawFilledCircle(screen, float32(r.X)+rad, float32(r.Y)+rad, rad, bg, true)
	vector.DrawFilledCircle(screen, float32(r.X+r.W)-rad, float32(r.Y)+rad, rad, bg, true)

	knobX := float32(r.X) + rad
	if on {
		knobX = float32(r.X+r.W) - rad
	}
	vector.DrawFilledCircle(screen, knobX, float32(r.Y)+rad, rad-3, color.White, true)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// truncate shortens s with an ellipsis so it fits within width pixels.
func truncate(face font.Face, s string, width int) string {
	if font.MeasureString(face, s).Ceil() <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := strings.TrimRight(string(runes), " ")
		if font.MeasureString(face, cut+"…").Ceil() <= width {
			return cut + "…"
		}
	}
	return ""
}
