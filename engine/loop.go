package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/hopper/constant"
	"github.com/lixenwraith/hopper/entity"
	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/render"
	"github.com/lixenwraith/hopper/status"
)

var (
	ErrUnknownEntity   = errors.New("entity not in loop")
	ErrDuplicateEntity = errors.New("entity id already in loop")
)

// LoopConfig holds optional collaborators; zero values select defaults
type LoopConfig struct {
	// Env is shared by every entity update; nil uses entity.DefaultEnv
	Env *entity.Env
	// Log receives loop diagnostics
	Log zerolog.Logger
	// Status receives per-frame HUD values; nil allocates a private registry
	Status *status.Registry
	// Meter creates the OpenTelemetry counters; nil uses a no-op meter
	Meter metric.Meter
	// SpriteSlots caps concurrently drawn entities; 0 uses constant.MaxSpriteSlots,
	// values above render.MaxArenaSlots are clamped
	SpriteSlots int
	// FrameLimit stops Run after that many frames; 0 runs unbounded
	FrameLimit uint64
	// OnEvents observes discrete entity transitions, e.g. for sound cues
	OnEvents func(e *entity.Entity, ev entity.Events)
}

// Loop runs the fixed-timestep frame: read input, step the camera, detect edges,
// update entities in list order, then draw and present
// All entity state is touched only from the goroutine calling Step or Run
type Loop struct {
	source   input.Source
	renderer render.Renderer
	entities []*entity.Entity
	arena    *render.Arena
	edges    input.EdgeDetector
	env      *entity.Env
	camera   float32

	log        zerolog.Logger
	onEvents   func(*entity.Entity, entity.Events)
	frameLimit uint64
	frame      uint64

	stats   *loopStats
	metrics *loopMetrics
}

// NewLoop creates a loop over entities, allocating one sprite slot per entity
func NewLoop(src input.Source, r render.Renderer, entities []*entity.Entity, cfg LoopConfig) (*Loop, error) {
	if src == nil {
		return nil, errors.New("input source is required")
	}
	if r == nil {
		return nil, errors.New("renderer is required")
	}

	env := cfg.Env
	if env == nil {
		env = entity.DefaultEnv()
	}
	slots := cfg.SpriteSlots
	if slots <= 0 {
		slots = constant.MaxSpriteSlots
	}
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	metrics, err := newLoopMetrics(cfg.Meter)
	if err != nil {
		return nil, err
	}

	l := &Loop{
		source:     src,
		renderer:   r,
		arena:      render.NewArena(slots),
		env:        env,
		log:        cfg.Log,
		onEvents:   cfg.OnEvents,
		frameLimit: cfg.FrameLimit,
		stats:      newLoopStats(reg),
		metrics:    metrics,
	}

	for _, e := range entities {
		if err := l.Add(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add appends e to the update list and allocates its sprite slot
func (l *Loop) Add(e *entity.Entity) error {
	if e == nil {
		return errors.New("nil entity")
	}
	if _, ok := l.arena.Lookup(uint32(e.ID)); ok {
		return fmt.Errorf("entity %d: %w", e.ID, ErrDuplicateEntity)
	}
	h, err := l.arena.Alloc(uint32(e.ID))
	if err != nil {
		return err
	}
	l.entities = append(l.entities, e)
	l.stats.entities.Store(int64(len(l.entities)))
	l.log.Debug().Uint32("id", uint32(e.ID)).Str("kind", e.Kind.String()).Uint8("slot", uint8(h)).Msg("Entity added")
	return nil
}

// Remove drops the entity from the update list and releases its sprite slot
func (l *Loop) Remove(id entity.ID) error {
	i := slices.IndexFunc(l.entities, func(e *entity.Entity) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("entity %d: %w", id, ErrUnknownEntity)
	}
	if err := l.arena.Release(uint32(id)); err != nil {
		return err
	}
	l.entities = slices.Delete(l.entities, i, i+1)
	l.stats.entities.Store(int64(len(l.entities)))
	l.log.Debug().Uint32("id", uint32(id)).Msg("Entity removed")
	return nil
}

// Entities returns the update list in order
func (l *Loop) Entities() []*entity.Entity {
	return l.entities
}

// Arena exposes sprite slot ownership
func (l *Loop) Arena() *render.Arena {
	return l.arena
}

// SetCamera sets the scalar carried in every following snapshot
func (l *Loop) SetCamera(c float32) {
	l.camera = c
}

// Camera returns the current camera scalar
func (l *Loop) Camera() float32 {
	return l.camera
}

// Frame returns the number of completed frames
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Step runs exactly one frame
func (l *Loop) Step() error {
	held := l.source.ReadHeld()

	// Up wins over down
	if held.Has(input.ButtonUp) {
		l.camera += parameter.CameraStep
	} else if held.Has(input.ButtonDown) {
		l.camera -= parameter.CameraStep
	}
	snap := l.edges.Step(held, l.camera)

	for _, e := range l.entities {
		ev := entity.Update(e, snap, l.env)
		if ev == 0 {
			continue
		}
		l.record(e, ev)
		if l.onEvents != nil {
			l.onEvents(e, ev)
		}
	}

	hidden := 0
	for _, e := range l.entities {
		k := e.Kinetic()
		if k == nil {
			continue
		}
		h, ok := l.arena.Lookup(uint32(e.ID))
		if !ok {
			continue
		}
		off := render.Hidden(k.Pos, e.SpriteSize(), l.env.Screen)
		if off {
			hidden++
		}
		x, y := k.Pos.TruncI()
		l.renderer.Draw(h, x, y, off)

		if e.Kind == entity.KindPlayer {
			l.stats.observePlayer(e.Player)
		}
	}

	if err := l.renderer.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frame, err)
	}

	l.frame++
	l.stats.frames.Store(int64(l.frame))
	l.stats.hidden.Store(int64(hidden))
	l.stats.held.Store(int64(held))
	l.stats.camera.Set(float64(l.camera))
	l.metrics.frame()
	return nil
}

// Run steps once per vsync until ctx ends, the source asks to quit or the
// frame limit is reached; cancellation is a normal stop
// Returns the number of frames stepped by this call
func (l *Loop) Run(ctx context.Context, vsync VSync) (uint64, error) {
	start := l.frame
	quitter, _ := l.source.(input.Quitter)

	for {
		if l.frameLimit > 0 && l.frame >= l.frameLimit {
			l.log.Info().Uint64("frames", l.frame).Msg("Frame limit reached")
			return l.frame - start, nil
		}

		if err := vsync.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return l.frame - start, nil
			}
			return l.frame - start, fmt.Errorf("vsync: %w", err)
		}

		if err := l.Step(); err != nil {
			l.log.Error().Err(err).Msg("Frame failed")
			return l.frame - start, err
		}

		if quitter != nil && quitter.QuitRequested() {
			l.log.Info().Uint64("frames", l.frame).Msg("Quit requested")
			return l.frame - start, nil
		}
	}
}

func (l *Loop) record(e *entity.Entity, ev entity.Events) {
	if ev&entity.EventJumped != 0 {
		l.stats.jumps.Add(1)
		l.metrics.jumped(e)
	}
	if ev&entity.EventLanded != 0 {
		l.stats.landings.Add(1)
		l.metrics.landed(e)
	}
}
