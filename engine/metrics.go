package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/hopper/entity"
	"github.com/lixenwraith/hopper/status"
)

const instrumentationName = "github.com/lixenwraith/hopper/engine"

// Meter returns the engine meter from the global provider
// No-op unless the host installs a provider
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// NoopMeter returns a meter that discards every measurement
func NoopMeter() metric.Meter {
	return noop.NewMeterProvider().Meter(instrumentationName)
}

// loopStats caches registry cells so the frame path stores lock-free
type loopStats struct {
	frames   *atomic.Int64
	entities *atomic.Int64
	hidden   *atomic.Int64
	held     *atomic.Int64
	jumps    *atomic.Int64
	landings *atomic.Int64
	camera   *status.AtomicFloat

	playerX        *status.AtomicFloat
	playerY        *status.AtomicFloat
	playerVX       *status.AtomicFloat
	playerVY       *status.AtomicFloat
	playerAirborne *atomic.Int64
}

func newLoopStats(reg *status.Registry) *loopStats {
	return &loopStats{
		frames:         reg.Ints.Get("engine.frames"),
		entities:       reg.Ints.Get("engine.entities"),
		hidden:         reg.Ints.Get("engine.hidden"),
		held:           reg.Ints.Get("input.held"),
		jumps:          reg.Ints.Get("player.jumps"),
		landings:       reg.Ints.Get("player.landings"),
		camera:         reg.Floats.Get("engine.camera"),
		playerX:        reg.Floats.Get("player.x"),
		playerY:        reg.Floats.Get("player.y"),
		playerVX:       reg.Floats.Get("player.vx"),
		playerVY:       reg.Floats.Get("player.vy"),
		playerAirborne: reg.Ints.Get("player.airborne"),
	}
}

func (s *loopStats) observePlayer(p *entity.Player) {
	if p == nil {
		return
	}
	s.playerX.Set(float64(p.Pos.X))
	s.playerY.Set(float64(p.Pos.Y))
	s.playerVX.Set(float64(p.Vel.X))
	s.playerVY.Set(float64(p.Vel.Y))
	if p.Airborne {
		s.playerAirborne.Store(1)
	} else {
		s.playerAirborne.Store(0)
	}
}

// loopMetrics holds the OpenTelemetry instruments
type loopMetrics struct {
	frames   metric.Int64Counter
	jumps    metric.Int64Counter
	landings metric.Int64Counter
}

func newLoopMetrics(m metric.Meter) (*loopMetrics, error) {
	if m == nil {
		m = NoopMeter()
	}

	lm := &loopMetrics{}
	var err error

	lm.frames, err = m.Int64Counter(
		"engine.frames",
		metric.WithDescription("Total frames stepped"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	lm.jumps, err = m.Int64Counter(
		"entity.jumps",
		metric.WithDescription("Total jumps started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating jumps counter: %w", err)
	}

	lm.landings, err = m.Int64Counter(
		"entity.landings",
		metric.WithDescription("Total landings"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating landings counter: %w", err)
	}

	return lm, nil
}

func (lm *loopMetrics) frame() {
	lm.frames.Add(context.Background(), 1)
}

func (lm *loopMetrics) jumped(e *entity.Entity) {
	lm.jumps.Add(context.Background(), 1, metric.WithAttributes(kindAttr(e)))
}

func (lm *loopMetrics) landed(e *entity.Entity) {
	lm.landings.Add(context.Background(), 1, metric.WithAttributes(kindAttr(e)))
}

func kindAttr(e *entity.Entity) attribute.KeyValue {
	return attribute.String("kind", e.Kind.String())
}
