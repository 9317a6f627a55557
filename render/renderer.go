package render

// Renderer receives per-entity sprite placement once per frame
// Only the truncated position and the hidden flag cross this boundary
type Renderer interface {
	Draw(slot Handle, x, y int, hidden bool)
	Present() error
}

// Command is one Draw call as recorded by Capture
type Command struct {
	Slot   Handle
	X, Y   int
	Hidden bool
}

// Capture records frames instead of drawing them, for tests and headless runs
type Capture struct {
	Frames  [][]Command
	pending []Command
}

// NewCapture creates an empty capture renderer
func NewCapture() *Capture {
	return &Capture{}
}

// Draw records a sprite placement
func (c *Capture) Draw(slot Handle, x, y int, hidden bool) {
	c.pending = append(c.pending, Command{Slot: slot, X: x, Y: y, Hidden: hidden})
}

// Present closes the current frame
func (c *Capture) Present() error {
	c.Frames = append(c.Frames, c.pending)
	c.pending = nil
	return nil
}

// Last returns the most recently presented frame
func (c *Capture) Last() []Command {
	if len(c.Frames) == 0 {
		return nil
	}
	return c.Frames[len(c.Frames)-1]
}
