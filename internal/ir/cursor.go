package ir

// Cursor walks a raw capture. It is a value: advancing returns a new Cursor
// and leaves the receiver untouched.
type Cursor struct {
	raw []uint32
	pos int
}

func NewCursor(raw []uint32, offset int) Cursor {
	if offset < 0 {
		offset = 0
	}
	if offset > len(raw) {
		offset = len(raw)
	}
	return Cursor{raw: raw, pos: offset}
}

// Pos is the index of the next entry.
func (c Cursor) Pos() int {
	return c.pos
}

func (c Cursor) Remaining() int {
	return len(c.raw) - c.pos
}

func (c Cursor) Done() bool {
	return c.pos >= len(c.raw)
}

func (c Cursor) Peek() (uint32, bool) {
	if c.Done() {
		return 0, false
	}
	return c.raw[c.pos], true
}

// Next returns the current entry and the cursor positioned after it.
func (c Cursor) Next() (uint32, Cursor, bool) {
	v, ok := c.Peek()
	if !ok {
		return 0, c, false
	}
	return v, Cursor{raw: c.raw, pos: c.pos + 1}, true
}
