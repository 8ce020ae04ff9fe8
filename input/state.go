package input

import "time"

// Edge classifies a boolean control between two consecutive frames
type Edge struct {
	Pressed  bool // false → true this frame
	Released bool // true → false this frame
	Held     bool // true this frame
}

// Classify derives the edge from previous and current state
func Classify(prev, cur bool) Edge {
	return Edge{
		Pressed:  !prev && cur,
		Released: prev && !cur,
		Held:     cur,
	}
}

// EdgeDetector remembers the previous frame of one control
type EdgeDetector struct {
	prev bool
}

// Update classifies cur against the last call and stores it
func (d *EdgeDetector) Update(cur bool) Edge {
	e := Classify(d.prev, cur)
	d.prev = cur
	return e
}

// Reset forgets the previous state
func (d *EdgeDetector) Reset() {
	d.prev = false
}

// HoldTracker emulates key-held state for terminals, which only report presses and autorepeat
// A key counts as held for window after its most recent press event
type HoldTracker struct {
	window time.Duration
	last   [actionCount]time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press or repeat event for a
func (h *HoldTracker) Press(a Action, now time.Time) {
	if a < actionCount {
		h.last[a] = now
	}
}

// Held reports whether a was pressed within the window before now
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	t := h.last[a]
	return !t.IsZero() && now.Sub(t) < h.window
}

// Intent samples every simulation control at now
func (h *HoldTracker) Intent(now time.Time) Intent {
	var in Intent
	for a := ActionRotateLeft; a <= ActionReset; a++ {
		in.Set(a, h.Held(a, now))
	}
	return in
}
