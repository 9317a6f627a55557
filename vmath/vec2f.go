package vmath

import "math"

// Vec2F is a float32 2D vector used by the platformer kinematics
// float32 matches the precision of the handheld's sprite coordinates
type Vec2F struct {
	X, Y float32
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float32) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float32 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float32 {
	return float32(math.Sqrt(float64(V2FMagSq(v))))
}

// V2FClampMagnitude limits vector length to maxMag while preserving direction
// Returns v unchanged if its magnitude is already within maxMag
func V2FClampMagnitude(v Vec2F, maxMag float32) Vec2F {
	magSq := V2FMagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	scale := maxMag / float32(math.Sqrt(float64(magSq)))
	return Vec2F{v.X * scale, v.Y * scale}
}

// V2FClamp clamps each component into [lo, hi] independently
func V2FClamp(v, lo, hi Vec2F) Vec2F {
	return Vec2F{ClampF32(v.X, lo.X, hi.X), ClampF32(v.Y, lo.Y, hi.Y)}
}

// ClampF32 restricts x to [lo, hi]; lo wins when the range is inverted
func ClampF32(x, lo, hi float32) float32 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// SignF32 returns -1, 0 or +1
func SignF32(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// AbsF32 returns |x|
func AbsF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// TruncI returns the integer-truncated components, toward zero
func (v Vec2F) TruncI() (int, int) {
	return int(v.X), int(v.Y)
}
