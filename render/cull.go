package render

import "github.com/lixenwraith/hopper/vmath"

// Hidden reports whether a sprite at pos with size lies entirely off screen
// Hidden when the bottom-right corner is at or behind the origin on any axis,
// or the top-left corner is at or beyond the far edge on any axis
func Hidden(pos, size, screen vmath.Vec2F) bool {
	return pos.X+size.X <= 0 || pos.Y+size.Y <= 0 ||
		pos.X >= screen.X || pos.Y >= screen.Y
}
