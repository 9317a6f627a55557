// Package entity implements the per-frame entity update protocol
// Entities are a closed set of kinds dispatched by an explicit switch; an entity
// owns at most one child and may borrow the child's kinematic state
package entity

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hopper/constant"
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/vmath"
)

// ID identifies an entity for the renderer and the sprite arena
type ID uint32

// Kind selects the update behavior of an entity
type Kind uint8

const (
	KindComposite Kind = iota // No own state, wraps one child
	KindPlayer                // Platformer controller
	KindCrate                 // Gravity-only body
	KindBody                  // Integrates only: no forces, no clamp
)

func (k Kind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindPlayer:
		return "player"
	case KindCrate:
		return "crate"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// Events reports discrete transitions that happened during an update
type Events uint8

const (
	EventJumped Events = 1 << iota
	EventLanded
)

var (
	ErrCycle           = errors.New("attaching child would create a cycle")
	ErrAlreadyAttached = errors.New("child already has a parent")
	ErrHasChild        = errors.New("parent already owns a child")
)

// Env carries the collaborators an update may consult
type Env struct {
	// Screen is the playfield size in pixels
	Screen vmath.Vec2F
	// JumpButton triggers the player jump
	JumpButton input.Button
	// Log is the diagnostic sink; writes are fire-and-forget
	Log zerolog.Logger
}

// DefaultEnv returns the handheld screen with A as jump and logging disabled
func DefaultEnv() *Env {
	return &Env{
		Screen:     vmath.Vec2F{X: constant.ScreenWidth, Y: constant.ScreenHeight},
		JumpButton: input.ButtonA,
		Log:        zerolog.Nop(),
	}
}

// Entity is a tagged variant over the concrete kinds
// Exactly one of Player/Crate/Body is set for the matching Kind; composites set none
type Entity struct {
	ID   ID
	Kind Kind
	Name string

	// Size is the sprite geometry in pixels; zero means use the child's
	Size vmath.Vec2F

	Player *Player
	Crate  *Crate
	Body   *Body

	// CascadeChild updates the child before this entity's own logic
	CascadeChild bool

	child  *Entity
	parent *Entity
}

// NewPlayer creates a player entity at pos
// The player starts airborne and can jump only after reaching the floor
func NewPlayer(id ID, pos vmath.Vec2F) *Entity {
	return &Entity{
		ID:     id,
		Kind:   KindPlayer,
		Name:   "player",
		Size:   vmath.Vec2F{X: constant.PlayerSpriteWidth, Y: constant.PlayerSpriteHeight},
		Player: &Player{Kinetic: core.Kinetic{Pos: pos}, Airborne: true},
	}
}

// NewBody creates a free-moving body at pos with velocity vel
func NewBody(id ID, name string, pos, vel vmath.Vec2F) *Entity {
	return &Entity{
		ID:   id,
		Kind: KindBody,
		Name: name,
		Size: vmath.Vec2F{X: constant.PlatformSpriteWidth, Y: constant.PlatformSpriteHeight},
		Body: &Body{Kinetic: core.Kinetic{Pos: pos, Vel: vel}},
	}
}

// NewCrate creates a crate entity at pos
func NewCrate(id ID, pos vmath.Vec2F) *Entity {
	return &Entity{
		ID:    id,
		Kind:  KindCrate,
		Name:  "crate",
		Size:  vmath.Vec2F{X: constant.PropSpriteWidth, Y: constant.PropSpriteHeight},
		Crate: &Crate{Kinetic: core.Kinetic{Pos: pos}},
	}
}

// NewComposite wraps child in a stateless composite
func NewComposite(id ID, name string, child *Entity, cascade bool) (*Entity, error) {
	e := &Entity{
		ID:           id,
		Kind:         KindComposite,
		Name:         name,
		CascadeChild: cascade,
	}
	if err := e.Attach(child); err != nil {
		return nil, err
	}
	return e, nil
}

// Attach makes child the single child of e
// The entity graph stays a forest: no cycles, no shared children
func (e *Entity) Attach(child *Entity) error {
	if child == nil {
		return nil
	}
	if e.child != nil {
		return ErrHasChild
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	for a := e; a != nil; a = a.parent {
		if a == child {
			return ErrCycle
		}
	}
	e.child = child
	child.parent = e
	return nil
}

// Child returns the optional child, nil for leaves
func (e *Entity) Child() *Entity {
	return e.child
}

// Kinetic returns the entity's own kinematic state, or its child's when it holds none
// Returns nil if no entity in the chain holds state
func (e *Entity) Kinetic() *core.Kinetic {
	switch e.Kind {
	case KindPlayer:
		if e.Player != nil {
			return &e.Player.Kinetic
		}
	case KindCrate:
		if e.Crate != nil {
			return &e.Crate.Kinetic
		}
	case KindBody:
		if e.Body != nil {
			return &e.Body.Kinetic
		}
	}
	if e.child != nil {
		return e.child.Kinetic()
	}
	return nil
}

// SpriteSize returns the entity's sprite geometry, falling back to the child's
func (e *Entity) SpriteSize() vmath.Vec2F {
	if e.Size != (vmath.Vec2F{}) || e.child == nil {
		return e.Size
	}
	return e.child.SpriteSize()
}

// Update advances e by one frame and returns the events raised
// With CascadeChild set the child is updated first; otherwise only e's own logic runs
func Update(e *Entity, snap input.Snapshot, env *Env) Events {
	var ev Events
	if e.CascadeChild && e.child != nil {
		ev |= Update(e.child, snap, env)
	}

	switch e.Kind {
	case KindPlayer:
		if e.Player != nil {
			ev |= e.Player.Update(snap, e.SpriteSize(), env)
		}
	case KindCrate:
		if e.Crate != nil {
			ev |= e.Crate.Update(e.SpriteSize(), env)
		}
	case KindBody:
		if e.Body != nil {
			e.Body.Update()
		}
	case KindComposite:
		// State is borrowed from the child; nothing of its own to advance
	}
	return ev
}
