package input

// Source is polled once per frame for the currently held buttons
type Source interface {
	ReadHeld() ButtonSet
}

// Quitter is optionally implemented by sources that can request loop exit
type Quitter interface {
	QuitRequested() bool
}

// Script replays a fixed sequence of held sets, one per frame
// After the last frame it keeps returning the final entry, or nothing if empty
type Script struct {
	frames []ButtonSet
	pos    int
}

// NewScript creates a scripted source
func NewScript(frames ...ButtonSet) *Script {
	return &Script{frames: frames}
}

// ReadHeld returns the next scripted frame
func (s *Script) ReadHeld() ButtonSet {
	if len(s.frames) == 0 {
		return 0
	}
	if s.pos >= len(s.frames) {
		return s.frames[len(s.frames)-1]
	}
	held := s.frames[s.pos]
	s.pos++
	return held
}

// Done reports whether every scripted frame has been consumed
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}

// Repeat expands a held set over n frames, for building scripts
func Repeat(held ButtonSet, n int) []ButtonSet {
	out := make([]ButtonSet, n)
	for i := range out {
		out[i] = held
	}
	return out
}
