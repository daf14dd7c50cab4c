// Package spark owns the live set of sparks: batches created on pointer
// presses and swept once their duration has passed.
package spark

import (
	"time"

	"github.com/google/uuid"
)

// Point is a screen coordinate with the origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Spark is one radial mark. It is never mutated after creation.
type Spark struct {
	ID        uuid.UUID
	Position  Point
	Angle     float64 // radians
	CreatedAt time.Time
}

// Elapsed returns the time since the spark was created.
func (s Spark) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// Expired reports whether the spark has lived for at least d.
func (s Spark) Expired(now time.Time, d time.Duration) bool {
	return s.Elapsed(now) >= d
}
