package input

import (
	"fmt"
	"io"

	"github.com/iburimskiy/clickspark/internal/config"
)

// Options describes how raw presses map onto the overlay.
type Options struct {
	// Scale is the monitor's device scale factor; X11 reports physical pixels.
	Scale float64
	// Height is the overlay height, used when YUp is set.
	Height float64
	// YUp marks line input as having its origin at the bottom-left corner.
	YUp bool
	// Lines is read by the "stdin" source.
	Lines io.Reader
}

// New builds the named source ("x11" or "stdin") with coordinate
// reconciliation and duplicate suppression applied once, here.
func New(name string, o Options) (Source, error) {
	var src Source
	switch name {
	case "x11":
		src = &Scale{Source: &X11Source{}, Factor: o.Scale}
	case "stdin":
		src = NewLineSource(o.Lines)
		if o.YUp {
			src = &FlipY{Source: src, Height: o.Height}
		}
	default:
		return nil, fmt.Errorf("unknown pointer source %q", name)
	}
	return &Dedup{Source: src, Window: config.DedupWindow}, nil
}
