package session

import (
	"sync/atomic"
	"time"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// Snapshot is one published emotion reading.
type Snapshot struct {
	Emotion domain.Emotion
	At      time.Time
}

// Cell is a single-slot, overwrite-on-write holder for the most recent
// fused emotion. The signal feed publishes into it; the dialogue path takes
// snapshot reads and never blocks waiting for a fresh frame. A stale read
// is acceptable by design.
type Cell struct {
	value atomic.Value // Snapshot
}

// NewCell returns a cell seeded with neutral.
func NewCell() *Cell {
	c := &Cell{}
	c.value.Store(Snapshot{Emotion: domain.EmotionNeutral, At: time.Now()})
	return c
}

// Publish overwrites the current reading.
func (c *Cell) Publish(e domain.Emotion) {
	c.value.Store(Snapshot{Emotion: e, At: time.Now()})
}

// Read returns the latest reading, whatever it currently is.
func (c *Cell) Read() Snapshot {
	return c.value.Load().(Snapshot)
}
