package engine

import (
	"context"
	"time"
)

// VSync blocks until the next display refresh
type VSync interface {
	Wait(ctx context.Context) error
}

// TickerVSync paces frames with a ticker
type TickerVSync struct {
	ticker *time.Ticker
}

// NewTickerVSync creates a pacer firing every interval
func NewTickerVSync(interval time.Duration) *TickerVSync {
	return &TickerVSync{ticker: time.NewTicker(interval)}
}

// Wait blocks for the next tick or until ctx ends
func (v *TickerVSync) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ticker.C:
		return nil
	}
}

// Stop releases the ticker
func (v *TickerVSync) Stop() {
	v.ticker.Stop()
}

// FreeRun never blocks; headless runs and tests step as fast as possible
type FreeRun struct{}

// Wait returns immediately unless ctx has ended
func (FreeRun) Wait(ctx context.Context) error {
	return ctx.Err()
}
