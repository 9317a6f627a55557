package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hopper/status"
)

// Pixels per terminal cell; terminal cells are roughly twice as tall as wide
const (
	PixelsPerCol = 4
	PixelsPerRow = 8
)

// Sprite describes how a slot is drawn on the terminal
type Sprite struct {
	Width, Height int // pixels
	Rune          rune
	Style         tcell.Style
}

// TcellRenderer draws sprite placements onto a tcell screen scaled down from LCD pixels
type TcellRenderer struct {
	screen        tcell.Screen
	width, height int // LCD pixels
	sprites       map[Handle]Sprite
	pending       []Command
	metrics       *status.Registry

	borderStyle tcell.Style
	hudStyle    tcell.Style
}

// NewTcellRenderer creates a renderer for an LCD of width x height pixels
// metrics may be nil to disable the HUD line
func NewTcellRenderer(screen tcell.Screen, width, height int, metrics *status.Registry) *TcellRenderer {
	return &TcellRenderer{
		screen:      screen,
		width:       width,
		height:      height,
		sprites:     make(map[Handle]Sprite),
		metrics:     metrics,
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		hudStyle:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// SetSprite assigns the appearance of a slot
func (r *TcellRenderer) SetSprite(slot Handle, s Sprite) {
	r.sprites[slot] = s
}

// Draw queues a sprite placement for the current frame
func (r *TcellRenderer) Draw(slot Handle, x, y int, hidden bool) {
	r.pending = append(r.pending, Command{Slot: slot, X: x, Y: y, Hidden: hidden})
}

// Present draws the playfield, queued sprites and HUD, then shows the screen
func (r *TcellRenderer) Present() error {
	r.screen.Clear()

	cols := (r.width + PixelsPerCol - 1) / PixelsPerCol
	rows := (r.height + PixelsPerRow - 1) / PixelsPerRow
	termW, termH := r.screen.Size()

	// Center the playfield, leave one line for the HUD
	offX := max((termW-cols-2)/2, 0)
	offY := max((termH-rows-3)/2, 0)

	r.drawBorder(offX, offY, cols, rows)

	for _, cmd := range r.pending {
		if cmd.Hidden {
			continue
		}
		sp, ok := r.sprites[cmd.Slot]
		if !ok {
			sp = Sprite{Width: PixelsPerCol, Height: PixelsPerRow, Rune: '?', Style: tcell.StyleDefault}
		}
		r.drawSprite(offX+1, offY+1, cols, rows, cmd.X, cmd.Y, sp)
	}
	r.pending = r.pending[:0]

	if r.metrics != nil {
		r.drawHUD(offX, offY+rows+2, termW)
	}

	r.screen.Show()
	return nil
}

func (r *TcellRenderer) drawBorder(x0, y0, cols, rows int) {
	for x := 1; x <= cols; x++ {
		r.screen.SetContent(x0+x, y0, '─', nil, r.borderStyle)
		r.screen.SetContent(x0+x, y0+rows+1, '─', nil, r.borderStyle)
	}
	for y := 1; y <= rows; y++ {
		r.screen.SetContent(x0, y0+y, '│', nil, r.borderStyle)
		r.screen.SetContent(x0+cols+1, y0+y, '│', nil, r.borderStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, r.borderStyle)
	r.screen.SetContent(x0+cols+1, y0, '┐', nil, r.borderStyle)
	r.screen.SetContent(x0, y0+rows+1, '└', nil, r.borderStyle)
	r.screen.SetContent(x0+cols+1, y0+rows+1, '┘', nil, r.borderStyle)
}

// drawSprite fills the cells covered by the sprite, clipped to the playfield
func (r *TcellRenderer) drawSprite(x0, y0, cols, rows, px, py int, sp Sprite) {
	c0 := floorDiv(px, PixelsPerCol)
	r0 := floorDiv(py, PixelsPerRow)
	c1 := floorDiv(px+sp.Width-1, PixelsPerCol)
	r1 := floorDiv(py+sp.Height-1, PixelsPerRow)

	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			r.screen.SetContent(x0+col, y0+row, sp.Rune, nil, sp.Style)
		}
	}
}

func (r *TcellRenderer) drawHUD(x, y, termW int) {
	var sb strings.Builder
	r.metrics.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&sb, "%s:%d ", key, v.Load())
	})
	r.metrics.Floats.Range(func(key string, v *status.AtomicFloat) {
		fmt.Fprintf(&sb, "%s:%.1f ", key, v.Get())
	})

	col := x
	for _, ch := range sb.String() {
		if col >= termW {
			break
		}
		r.screen.SetContent(col, y, ch, nil, r.hudStyle)
		col++
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
