// Package keytracker turns ebiten's held-key polling into edge-triggered
// presses for toggles.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Tracker remembers, per key, whether it was down on the previous poll.
type Tracker struct {
	prevPressed map[ebiten.Key]bool
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{prevPressed: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed reports whether key went down since the previous call for
// the same key. Call it once per tick per key.
func (t *Tracker) IsKeyJustPressed(key ebiten.Key) bool {
	return t.Observe(key, ebiten.IsKeyPressed(key))
}

// Observe records the current state of key and reports a rising edge.
func (t *Tracker) Observe(key ebiten.Key, pressed bool) bool {
	if t.prevPressed == nil {
		t.prevPressed = make(map[ebiten.Key]bool)
	}
	justPressed := pressed && !t.prevPressed[key]
	t.prevPressed[key] = pressed
	return justPressed
}
