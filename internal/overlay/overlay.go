// Package overlay runs the spark render loop on a transparent, floating,
// input-transparent window covering the primary monitor.
package overlay

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/clickspark/internal/render"
	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/spark"
)

type Game struct {
	done   <-chan struct{}
	width  int
	height int

	loop     *render.Loop
	segments []render.Segment
}

// New creates the overlay game. width and height are the monitor size in
// device-independent pixels; the loop ends once done is closed.
func New(done <-chan struct{}, engine *spark.Engine, s *settings.Settings, width, height int) *Game {
	return &Game{
		done:   done,
		width:  width,
		height: height,
		loop:   render.NewLoop(engine, s, time.Now),
	}
}

// Update runs once per displayed frame. It sweeps with the timestamp of
// the frame already drawn, then computes the next frame.
func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	g.segments = g.loop.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.segments {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), float32(s.Width), s.Color, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the overlay window and blocks until the game terminates.
func Run(g *Game) error {
	ebiten.SetWindowTitle("Click Spark")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
