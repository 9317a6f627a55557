package replay

import "github.com/lixenwraith/hopper/input"

// Recorder wraps a source and keeps every held set it returns
type Recorder struct {
	src    input.Source
	frames []input.ButtonSet
}

// NewRecorder starts recording src
func NewRecorder(src input.Source) *Recorder {
	return &Recorder{src: src}
}

// ReadHeld reads from the wrapped source and records the result
func (r *Recorder) ReadHeld() input.ButtonSet {
	held := r.src.ReadHeld()
	r.frames = append(r.frames, held)
	return held
}

// QuitRequested forwards the wrapped source's quit request
func (r *Recorder) QuitRequested() bool {
	if q, ok := r.src.(input.Quitter); ok {
		return q.QuitRequested()
	}
	return false
}

// Frames returns a copy of the recorded stream
func (r *Recorder) Frames() []input.ButtonSet {
	out := make([]input.ButtonSet, len(r.frames))
	copy(out, r.frames)
	return out
}

// Player replays a recorded stream; nothing is held after the end
type Player struct {
	frames []input.ButtonSet
	pos    int
	// StopAtEnd makes QuitRequested true once the stream is exhausted
	StopAtEnd bool
}

// NewPlayer creates a playback source
func NewPlayer(frames []input.ButtonSet, stopAtEnd bool) *Player {
	return &Player{frames: frames, StopAtEnd: stopAtEnd}
}

// ReadHeld returns the next recorded held set
func (p *Player) ReadHeld() input.ButtonSet {
	if p.pos >= len(p.frames) {
		return 0
	}
	held := p.frames[p.pos]
	p.pos++
	return held
}

// Done reports whether every frame has been played
func (p *Player) Done() bool {
	return p.pos >= len(p.frames)
}

// QuitRequested is true after the last frame when StopAtEnd is set
func (p *Player) QuitRequested() bool {
	return p.StopAtEnd && p.Done()
}
