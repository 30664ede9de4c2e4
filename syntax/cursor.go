package syntax

// Cursor is a backtrackable position over an ordered sequence of elements:
// the runes of a source text or the tokens of a file.
type Cursor[T any] struct {
	elems []T
	ndx   int
}

// NewCursor creates a new cursor positioned on the first element.
func NewCursor[T any](elems []T) *Cursor[T] {
	return &Cursor[T]{elems: elems}
}

// Peek returns the element offset from the current position (zero by
// default).  The boolean is false if that position is out of range.
func (c *Cursor[T]) Peek(offset ...int) (T, bool) {
	n := c.ndx
	if len(offset) > 0 {
		n += offset[0]
	}

	if 0 <= n && n < len(c.elems) {
		return c.elems[n], true
	}

	var zero T
	return zero, false
}

// Consume advances the cursor (by one by default) and returns the new current
// element.
func (c *Cursor[T]) Consume(offset ...int) (T, bool) {
	if len(offset) > 0 {
		c.ndx += offset[0]
	} else {
		c.ndx++
	}

	return c.Peek()
}

// EOF returns whether the cursor has moved past the last element.
func (c *Cursor[T]) EOF() bool {
	_, ok := c.Peek()
	return !ok
}

// Index returns the current position of the cursor.
func (c *Cursor[T]) Index() int {
	return c.ndx
}

// Memo captures the current position and returns a function restoring the
// cursor to it.
func (c *Cursor[T]) Memo() func() {
	saved := c.ndx
	return func() {
		c.ndx = saved
	}
}

// Slice returns the elements between two positions.
func (c *Cursor[T]) Slice(from, to int) []T {
	return c.elems[from:to]
}

// -----------------------------------------------------------------------------

// FirstOf combines candidate productions into one which tries each candidate
// in order and yields the result of the first that succeeds.  It does not
// restore any state between attempts: candidates that consume input must
// backtrack on their own.
func FirstOf[R any](candidates ...func() (R, bool)) func() (R, bool) {
	return func() (R, bool) {
		for _, candidate := range candidates {
			if r, ok := candidate(); ok {
				return r, true
			}
		}

		var zero R
		return zero, false
	}
}
