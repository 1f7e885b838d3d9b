// Package trajectory keeps a bounded rolling history of emotion labels per
// session and describes the recent trend in plain language.
package trajectory

import (
	"fmt"
	"time"

	"github.com/pranavshinde369/feelio/internal/domain"
)

// Capacity is the maximum number of entries retained per session.
const Capacity = 180

// recentWindow is how many trailing entries summarization inspects.
const recentWindow = 20

// minEntries below which the trend is reported as steady.
const minEntries = 4

// SteadySentinel is returned while the history is too short to read a trend.
const SteadySentinel = "steady so far"

// Entry is one timestamped emotion observation.
type Entry struct {
	At      time.Time
	Emotion domain.Emotion
}

// Tracker is a fixed-capacity ring buffer of entries. Oldest entries are
// silently evicted on overflow. Not safe for concurrent use; the owning
// session serializes access.
type Tracker struct {
	entries [Capacity]Entry
	start   int
	length  int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends (now, emotion), evicting the oldest entry when full.
func (t *Tracker) Record(e domain.Emotion) {
	t.RecordAt(time.Now(), e)
}

// RecordAt appends an entry with an explicit timestamp.
func (t *Tracker) RecordAt(at time.Time, e domain.Emotion) {
	idx := (t.start + t.length) % Capacity
	t.entries[idx] = Entry{At: at, Emotion: e}
	if t.length < Capacity {
		t.length++
	} else {
		t.start = (t.start + 1) % Capacity
	}
}

// Len returns the number of retained entries.
func (t *Tracker) Len() int {
	return t.length
}

// Entries returns the retained entries oldest-first.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, t.length)
	for i := 0; i < t.length; i++ {
		out[i] = t.entries[(t.start+i)%Capacity]
	}
	return out
}

// Recent returns up to n trailing emotion labels, oldest-first.
func (t *Tracker) Recent(n int) []domain.Emotion {
	if n > t.length {
		n = t.length
	}
	out := make([]domain.Emotion, n)
	for i := 0; i < n; i++ {
		out[i] = t.entries[(t.start+t.length-n+i)%Capacity].Emotion
	}
	return out
}

// Summarize describes how the emotion has shifted recently. With fewer than
// four entries it reports the steady sentinel. Otherwise it inspects the
// trailing window: differing endpoints read as a transition, matching
// endpoints read as the window's most frequent label (first-encountered
// order breaks count ties).
func (t *Tracker) Summarize() string {
	if t.length < minEntries {
		return SteadySentinel
	}

	recent := t.Recent(recentWindow)
	start, end := recent[0], recent[len(recent)-1]
	if start != end {
		return fmt.Sprintf("from %s toward %s", start, end)
	}

	counts := make(map[domain.Emotion]int, len(recent))
	dominant := recent[0]
	for _, e := range recent {
		counts[e]++
		if counts[e] > counts[dominant] {
			dominant = e
		}
	}
	return fmt.Sprintf("mostly %s", dominant)
}
