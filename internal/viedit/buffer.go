package viedit

// Buffer holds a single line of text and a cursor measured in runes.
// The cursor is always within [0, Len()].
type Buffer struct {
	text   []rune
	cursor int
}

// NewBuffer creates a buffer holding s with the cursor at 0.
func NewBuffer(s string) *Buffer {
	return &Buffer{text: []rune(s)}
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Runes returns a copy of the buffer content.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.text))
	copy(out, b.text)
	return out
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetText replaces the content, pulling the cursor back if it now lies past the end.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.SetCursor(b.cursor)
}

// SetCursor moves the cursor, clamped to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
}

// Slice returns the text between lo and hi, clamped to the buffer.
func (b *Buffer) Slice(lo, hi int) string {
	lo = clamp(lo, 0, len(b.text))
	hi = clamp(hi, lo, len(b.text))
	return string(b.text[lo:hi])
}

// Split returns the text inside [lo, hi) and the text outside it.
// The bounds may be given in either order.
func (b *Buffer) Split(lo, hi int) (inside, outside string) {
	if hi < lo {
		lo, hi = hi, lo
	}
	lo = clamp(lo, 0, len(b.text))
	hi = clamp(hi, lo, len(b.text))
	inside = string(b.text[lo:hi])
	outside = string(b.text[:lo]) + string(b.text[hi:])
	return inside, outside
}

// Insert places s at pos and leaves the cursor just past it.
func (b *Buffer) Insert(pos int, s string) {
	pos = clamp(pos, 0, len(b.text))
	ins := []rune(s)
	text := make([]rune, 0, len(b.text)+len(ins))
	text = append(text, b.text[:pos]...)
	text = append(text, ins...)
	text = append(text, b.text[pos:]...)
	b.text = text
	b.cursor = pos + len(ins)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
