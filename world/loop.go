package world

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Loop drives a world at its tick rate from a ticker. The graphical
// frontend does not need it; ebiten schedules Update itself.
type Loop struct {
	world    *World
	onTick   func(Report)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop returns a loop for w. onTick, when non-nil, receives every
// report on the loop's goroutine.
func NewLoop(w *World, onTick func(Report)) *Loop {
	return &Loop{
		world:    w,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.world.tickRate))
	defer ticker.Stop()

	l.world.log.Info("loop started", zap.Int("tickRate", l.world.tickRate))

	for {
		select {
		case <-ctx.Done():
			l.world.log.Info("loop stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-l.stopChan:
			l.world.log.Info("loop stopped")
			return nil
		case <-ticker.C:
			r := l.world.Tick()
			if l.onTick != nil {
				l.onTick(r)
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
