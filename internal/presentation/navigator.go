package presentation

// Navigator is a bounded slide cursor. Every method is safe to call at any
// time: with no deck, or a deck without slides, movement is a no-op.
type Navigator struct {
	count  int
	cursor int
}

// reset points the cursor at the first of n slides. n <= 0 leaves it undefined.
func (n *Navigator) reset(count int) {
	n.count = max(count, 0)
	n.cursor = 0
}

// Current returns the cursor, or false when it is undefined.
func (n *Navigator) Current() (int, bool) {
	if n.count == 0 {
		return 0, false
	}
	return n.cursor, true
}

// GoTo moves to i clamped to [0, count-1].
func (n *Navigator) GoTo(i int) {
	if n.count == 0 {
		return
	}
	n.cursor = max(0, min(i, n.count-1))
}

// Next advances one slide; a no-op on the last slide.
func (n *Navigator) Next() { n.GoTo(n.cursor + 1) }

// Previous goes back one slide; a no-op on the first slide.
func (n *Navigator) Previous() { n.GoTo(n.cursor - 1) }

// First jumps to the first slide.
func (n *Navigator) First() { n.GoTo(0) }

// Last jumps to the last slide.
func (n *Navigator) Last() { n.GoTo(n.count - 1) }

// AtFirst reports whether Previous would not move.
func (n *Navigator) AtFirst() bool { return n.count == 0 || n.cursor == 0 }

// AtLast reports whether Next would not move.
func (n *Navigator) AtLast() bool { return n.count == 0 || n.cursor == n.count-1 }

// Count returns the number of navigable slides.
func (n *Navigator) Count() int { return n.count }
