package physics

import (
	"testing"

	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/vmath"
)

func TestIntegrate_ZeroStateUnchanged(t *testing.T) {
	k := core.Kinetic{Pos: vmath.Vec2F{X: 42, Y: 17}}
	Integrate(&k, parameter.FrameDT)

	if k.Pos != (vmath.Vec2F{X: 42, Y: 17}) {
		t.Errorf("Expected position unchanged, got %v", k.Pos)
	}
	if k.Vel != (vmath.Vec2F{}) {
		t.Errorf("Expected velocity unchanged, got %v", k.Vel)
	}
}

func TestIntegrate_PositionUsesPreAccelVelocity(t *testing.T) {
	k := core.Kinetic{
		Vel:   vmath.Vec2F{X: 6, Y: 0},
		Accel: vmath.Vec2F{X: 600, Y: 60},
	}
	Integrate(&k, parameter.FrameDT)

	// 6 * 10 / 60 = 1; accel must not leak into this frame's displacement
	if vmath.AbsF32(k.Pos.X-1) > 1e-5 {
		t.Errorf("Expected Pos.X 1, got %f", k.Pos.X)
	}
	if k.Pos.Y != 0 {
		t.Errorf("Expected Pos.Y 0, got %f", k.Pos.Y)
	}
	if vmath.AbsF32(k.Vel.X-16) > 1e-4 {
		t.Errorf("Expected Vel.X 16, got %f", k.Vel.X)
	}
	if vmath.AbsF32(k.Vel.Y-1) > 1e-5 {
		t.Errorf("Expected Vel.Y 1, got %f", k.Vel.Y)
	}
}

func TestSnapDeadZoneX(t *testing.T) {
	tests := []struct {
		vel     float32
		snapped bool
		expect  float32
	}{
		{0.05, true, 0},
		{-0.05, true, 0},
		{0.0499, true, 0},
		{0.06, false, 0.06},
		{-3, false, -3},
		{0, false, 0},
	}

	for _, tt := range tests {
		k := core.Kinetic{Vel: vmath.Vec2F{X: tt.vel, Y: 7}}
		got := SnapDeadZoneX(&k, parameter.DeadZoneSpeed)
		if got != tt.snapped {
			t.Errorf("vel %f: expected snapped=%v, got %v", tt.vel, tt.snapped, got)
		}
		if k.Vel.X != tt.expect {
			t.Errorf("vel %f: expected Vel.X %f, got %f", tt.vel, tt.expect, k.Vel.X)
		}
		if k.Vel.Y != 7 {
			t.Errorf("vel %f: Vel.Y must be untouched, got %f", tt.vel, k.Vel.Y)
		}
	}
}

func TestCapSpeed_CombinedVector(t *testing.T) {
	// Each axis is under the cap but the combined vector is not
	k := core.Kinetic{Vel: vmath.Vec2F{X: 40, Y: 40}}
	if !CapSpeed(&k, parameter.MaxSpeed) {
		t.Fatal("Expected combined vector to be clamped")
	}

	mag := vmath.V2FMag(k.Vel)
	if vmath.AbsF32(mag-parameter.MaxSpeed) > 1e-3 {
		t.Errorf("Expected magnitude %f, got %f", parameter.MaxSpeed, mag)
	}
	if vmath.AbsF32(k.Vel.X-k.Vel.Y) > 1e-4 {
		t.Errorf("Expected direction preserved, got %v", k.Vel)
	}

	k = core.Kinetic{Vel: vmath.Vec2F{X: 30, Y: -40}}
	if CapSpeed(&k, parameter.MaxSpeed) {
		t.Error("Expected vector at exactly max speed to be left alone")
	}
}

func TestClampPosition(t *testing.T) {
	k := core.Kinetic{Pos: vmath.Vec2F{X: -4, Y: 300}}
	ClampPosition(&k, vmath.Vec2F{}, vmath.Vec2F{X: 240, Y: 176})

	if k.Pos != (vmath.Vec2F{X: 0, Y: 176}) {
		t.Errorf("Expected {0 176}, got %v", k.Pos)
	}
}
