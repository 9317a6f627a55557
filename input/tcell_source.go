package input

import (
	"math/bits"

	"github.com/gdamore/tcell/v2"
)

const buttonCount = 12

// TcellSource turns terminal key events into a held-button set
// Terminals report presses and auto-repeats but no releases, so each press
// latches its button for holdFrames frames
type TcellSource struct {
	events     <-chan tcell.Event
	keys       *KeyTable
	holdFrames int
	remaining  [buttonCount]int
	quit       bool
	onResize   func()
}

// NewTcellSource creates a source reading from events, typically fed by PumpEvents
func NewTcellSource(events <-chan tcell.Event, keys *KeyTable, holdFrames int) *TcellSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &TcellSource{
		events:     events,
		keys:       keys,
		holdFrames: holdFrames,
	}
}

// OnResize registers a callback invoked on the loop goroutine for resize events
func (s *TcellSource) OnResize(fn func()) {
	s.onResize = fn
}

// ReadHeld ages latched buttons, drains pending events without blocking and returns the held set
func (s *TcellSource) ReadHeld() ButtonSet {
	for i := range s.remaining {
		if s.remaining[i] > 0 {
			s.remaining[i]--
		}
	}

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.quit = true
				break drain
			}
			s.HandleEvent(ev)
		default:
			break drain
		}
	}

	var held ButtonSet
	for i, n := range s.remaining {
		if n > 0 {
			held |= ButtonSet(1 << i)
		}
	}
	return held
}

// HandleEvent applies a single terminal event
func (s *TcellSource) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if s.keys.IsQuit(ev) {
			s.quit = true
			return
		}
		if b, ok := s.keys.Lookup(ev); ok {
			s.remaining[bits.TrailingZeros16(uint16(b))] = s.holdFrames
		}
	case *tcell.EventResize:
		if s.onResize != nil {
			s.onResize()
		}
	}
}

// QuitRequested reports whether a quit key was seen or the event stream closed
func (s *TcellSource) QuitRequested() bool {
	return s.quit
}

// PumpEvents forwards screen events to out until the screen is finalized
// Runs on its own goroutine; PollEvent returns nil after Fini
func PumpEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}
