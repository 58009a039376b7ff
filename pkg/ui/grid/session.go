package grid

// Session is the text-editing state for the focused element. It is
// either idle or holds a rune buffer with a cursor offset. The
// session never interprets its text; parsing belongs to the caller.
type Session struct {
	buf    []rune
	offset int
	active bool
}

// Active reports whether an edit is in progress.
func (s *Session) Active() bool { return s.active }

// Text returns the buffer contents.
func (s *Session) Text() string { return string(s.buf) }

// Offset returns the cursor offset in runes from the start of the
// buffer.
func (s *Session) Offset() int { return s.offset }

// Start begins editing with the given initial text and the cursor at
// its end.
func (s *Session) Start(initial string) {
	s.buf = []rune(initial)
	s.offset = len(s.buf)
	s.active = true
}

// InsertRune inserts r at the cursor. No-op while idle.
func (s *Session) InsertRune(r rune) {
	if !s.active {
		return
	}
	s.buf = append(s.buf, 0)
	copy(s.buf[s.offset+1:], s.buf[s.offset:])
	s.buf[s.offset] = r
	s.offset++
}

// DeleteLeft removes the rune before the cursor. No-op while idle or
// at the start of the buffer.
func (s *Session) DeleteLeft() {
	if !s.active || s.offset == 0 {
		return
	}
	s.buf = append(s.buf[:s.offset-1], s.buf[s.offset:]...)
	s.offset--
}

// DeleteRight removes the rune under the cursor. No-op while idle or
// at the end of the buffer.
func (s *Session) DeleteRight() {
	if !s.active || s.offset >= len(s.buf) {
		return
	}
	s.buf = append(s.buf[:s.offset], s.buf[s.offset+1:]...)
}

// MoveLeft moves the cursor one rune left. No-op while idle.
func (s *Session) MoveLeft() {
	if s.active && s.offset > 0 {
		s.offset--
	}
}

// MoveRight moves the cursor one rune right. No-op while idle.
func (s *Session) MoveRight() {
	if s.active && s.offset < len(s.buf) {
		s.offset++
	}
}

// MoveToStart puts the cursor before the first rune.
func (s *Session) MoveToStart() {
	if s.active {
		s.offset = 0
	}
}

// MoveToEnd puts the cursor after the last rune.
func (s *Session) MoveToEnd() {
	if s.active {
		s.offset = len(s.buf)
	}
}

// Cancel discards the buffer and returns to idle.
func (s *Session) Cancel() {
	s.buf = nil
	s.offset = 0
	s.active = false
}

// Commit returns the edited text and resets the session to idle. The
// second return is false when no edit was in progress.
func (s *Session) Commit() (string, bool) {
	if !s.active {
		return "", false
	}
	text := string(s.buf)
	s.Cancel()
	return text, true
}
