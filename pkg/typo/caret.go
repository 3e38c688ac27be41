package typo

import "unicode/utf8"

// Caret tracks the caret across one stage.
//
// Compensation is global rather than positional: every rewrite contributes
// its delta to one running total, wherever in the buffer it happened.
type Caret struct {
	origin int
	delta  int
}

// Capture starts tracking the caret at offset within buf.
// Out-of-range offsets are accepted and clamped by Adjust.
func Capture(_ string, offset int) *Caret {
	return &Caret{origin: offset}
}

// Record adds the delta of one rewrite. It implements DeltaRecorder.
func (c *Caret) Record(delta int) {
	c.delta += delta
}

// Origin returns the captured offset.
func (c *Caret) Origin() int {
	return c.origin
}

// Delta returns the running delta.
func (c *Caret) Delta() int {
	return c.delta
}

// Adjust returns origin+delta clamped to [0, runeLen(final)].
func (c *Caret) Adjust(final string) int {
	return Clamp(c.origin+c.delta, utf8.RuneCountInString(final))
}

// Clamp limits offset to [0, length].
func Clamp(offset, length int) int {
	return max(0, min(offset, length))
}
