// Package input delivers primary pointer presses, in overlay coordinates,
// to whoever triggers sparks. OS-specific capture lives behind Source.
package input

import (
	"context"
	"errors"

	"github.com/iburimskiy/clickspark/internal/spark"
)

// ErrNoDisplay is returned when no display server connection can be made.
var ErrNoDisplay = errors.New("no display connection")

// Handler receives one call per logical pointer press.
type Handler func(p spark.Point)

// Source produces pointer presses until ctx is done or capture fails.
// Run calls h from its own goroutine.
type Source interface {
	Run(ctx context.Context, h Handler) error
}
