package viedit

// Motion computes a new cursor offset from the text and the current offset.
type Motion int

const (
	MotionWordForward Motion = iota
	MotionWordBackward
	MotionWordEnd
	MotionLineStart
	MotionLineEnd
)

// String returns the motion's hierarchical name.
func (m Motion) String() string {
	switch m {
	case MotionWordForward:
		return "word.forward"
	case MotionWordBackward:
		return "word.backward"
	case MotionWordEnd:
		return "word.end"
	case MotionLineStart:
		return "line.start"
	case MotionLineEnd:
		return "line.end"
	default:
		return "unknown"
	}
}

// ApplyMotion applies the single-step motion count times, each step starting
// from the previous result. last is the highest offset the motion may land on;
// callers pass len-1 when the cursor must sit on a character and len when it
// may sit past the end. An empty text always yields 0.
func ApplyMotion(m Motion, text []rune, pos, count, last int) int {
	if len(text) == 0 {
		return 0
	}
	last = clamp(last, 0, len(text))
	pos = clamp(pos, 0, last)
	count = max(count, 1)

	switch m {
	case MotionLineStart:
		return 0
	case MotionLineEnd:
		return last
	}

	for range count {
		next := step(m, text, pos, last)
		if next == pos {
			break
		}
		pos = next
	}
	return pos
}

func step(m Motion, text []rune, pos, last int) int {
	switch m {
	case MotionWordForward:
		return wordForward(text, pos, last)
	case MotionWordBackward:
		return wordBackward(text, pos)
	case MotionWordEnd:
		return wordEnd(text, pos)
	default:
		return pos
	}
}

// wordForward skips the rest of the current word, then the whitespace after it.
func wordForward(text []rune, pos, last int) int {
	for pos < last && !isWhitespace(text[pos]) {
		pos++
	}
	for pos < last && isWhitespace(text[pos]) {
		pos++
	}
	return pos
}

// wordBackward skips whitespace behind the cursor, then the word before it.
func wordBackward(text []rune, pos int) int {
	for pos > 0 && isWhitespace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !isWhitespace(text[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd skips whitespace ahead of the cursor, then lands on the last
// character of the following word.
func wordEnd(text []rune, pos int) int {
	end := len(text) - 1
	if pos >= end {
		return pos
	}
	for pos+1 < end && isWhitespace(text[pos+1]) {
		pos++
	}
	for pos+1 <= end && !isWhitespace(text[pos+1]) {
		pos++
	}
	return pos
}

// isWhitespace returns true for space and tab only.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}
