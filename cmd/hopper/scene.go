package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hopper/constant"
	"github.com/lixenwraith/hopper/engine"
	"github.com/lixenwraith/hopper/entity"
	"github.com/lixenwraith/hopper/render"
	"github.com/lixenwraith/hopper/vmath"
)

const (
	playerID   entity.ID = 1
	crateID    entity.ID = 2
	holderID   entity.ID = 3
	platformID entity.ID = 4
)

// platformSpeed is the platform's constant horizontal velocity
const platformSpeed = 100

// buildScene returns the demo entity list in update order
// The holder composite borrows the crate's state; with cascade off the crate hangs in place
// The platform drifts right from the origin and is culled once it leaves the screen
func buildScene(cascade bool) ([]*entity.Entity, error) {
	floor := float32(constant.ScreenHeight - constant.PlayerSpriteHeight)
	player := entity.NewPlayer(playerID, vmath.Vec2F{X: 32, Y: floor})

	crate := entity.NewCrate(crateID, vmath.Vec2F{X: 176, Y: 48})
	holder, err := entity.NewComposite(holderID, "holder", crate, cascade)
	if err != nil {
		return nil, err
	}

	platform := entity.NewBody(platformID, "platform", vmath.Vec2F{}, vmath.Vec2F{X: platformSpeed})

	return []*entity.Entity{player, holder, platform}, nil
}

// assignSprites gives every entity in the loop its terminal appearance
func assignSprites(r *render.TcellRenderer, l *engine.Loop) {
	for _, e := range l.Entities() {
		h, ok := l.Arena().Lookup(uint32(e.ID))
		if !ok {
			continue
		}
		size := e.SpriteSize()
		sp := render.Sprite{Width: int(size.X), Height: int(size.Y)}
		switch e.Kind {
		case entity.KindPlayer:
			sp.Rune = '@'
			sp.Style = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
		case entity.KindBody:
			sp.Rune = '='
			sp.Style = tcell.StyleDefault.Foreground(tcell.ColorAqua)
		default:
			sp.Rune = '#'
			sp.Style = tcell.StyleDefault.Foreground(tcell.ColorOrange)
		}
		r.SetSprite(h, sp)
	}
}
