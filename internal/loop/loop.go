// Package loop runs a game on its own goroutine at a fixed tick rate,
// independent of rendering. Each tick receives the real elapsed time and
// a copy of the resulting state is published for readers.
package loop

import (
	"context"
	"io"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Defaults for New.
const (
	DefaultTickRate = 60
	DefaultMaxDelta = 250 * time.Millisecond
	DefaultMaxLag   = 100 * time.Millisecond
)

// Loop owns a game and the wall clock that drives it.
type Loop struct {
	game     registry.Game
	interval time.Duration
	maxDelta time.Duration // Cap on the dt passed to a single tick
	maxLag   time.Duration // Falling further behind resets the schedule
	logger   *log.Logger

	frames chan registry.Frame
	ticks  atomic.Uint64
	panics atomic.Uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithTickRate sets the number of ticks per second.
func WithTickRate(rate int) Option {
	return func(l *Loop) {
		if rate > 0 {
			l.interval = time.Second / time.Duration(rate)
		}
	}
}

// WithMaxDelta caps the elapsed time handed to one tick.
func WithMaxDelta(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.maxDelta = d
		}
	}
}

// WithMaxLag sets how far behind schedule the loop may fall before it
// gives up on catching up and restarts its schedule from now.
func WithMaxLag(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.maxLag = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loop for game. The game must already be Reset.
func New(game registry.Game, opts ...Option) *Loop {
	l := &Loop{
		game:     game,
		interval: time.Second / DefaultTickRate,
		maxDelta: DefaultMaxDelta,
		maxLag:   DefaultMaxLag,
		logger:   log.New(io.Discard),
		frames:   make(chan registry.Frame, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Frames returns the channel of published frames. Only the latest frame is
// kept; a slow reader skips frames instead of stalling the loop.
// The channel is closed when Run returns.
func (l *Loop) Frames() <-chan registry.Frame {
	return l.frames
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Panics returns how many ticks panicked and were recovered.
func (l *Loop) Panics() uint64 {
	return l.panics.Load()
}

// Run ticks the game until ctx is cancelled or the game's quit intent is
// raised. It returns ctx.Err() on cancellation and nil on quit.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.frames)

	logger := l.logger.With("game", l.game.ID())
	logger.Info("loop started", "interval", l.interval)
	defer logger.Info("loop stopped", "ticks", l.ticks.Load())

	first, ok := l.snapshot()
	if ok {
		l.publish(first)
	}
	phase := core.PhaseRunning
	if first != nil {
		phase = first.State().Phase
	}

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	last := time.Now()
	next := last.Add(l.interval)

	for {
		if l.game.Intents().Quitting() {
			logger.Info("quit requested")
			return nil
		}

		if wait := time.Until(next); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else {
			// Behind schedule: tick without sleeping
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		now := time.Now()
		dt := min(now.Sub(last), l.maxDelta)
		last = now

		if res, ok := l.step(dt.Seconds()); ok {
			if res.State.Phase != phase {
				logger.Info("phase changed", "from", phase, "to", res.State.Phase, "score", res.State.Score)
				phase = res.State.Phase
			}
			if frame, ok := l.snapshot(); ok {
				l.publish(frame)
			}
		}

		next = next.Add(l.interval)
		if lag := now.Sub(next); lag > l.maxLag {
			logger.Debug("clock reset", "lag", lag)
			next = now.Add(l.interval)
		}
	}
}

// step runs one tick, turning a panic into a logged, skipped tick.
func (l *Loop) step(dt float64) (res core.StepResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l.panics.Add(1)
			l.logger.Error("tick panicked", "game", l.game.ID(), "panic", r, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	res = l.game.Tick(dt)
	l.ticks.Add(1)
	return res, true
}

func (l *Loop) snapshot() (frame registry.Frame, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l.panics.Add(1)
			l.logger.Error("snapshot panicked", "game", l.game.ID(), "panic", r)
			ok = false
		}
	}()
	return l.game.Snapshot(), true
}

// publish replaces any unread frame with f.
func (l *Loop) publish(f registry.Frame) {
	select {
	case l.frames <- f:
		return
	default:
	}
	// Drop the stale frame; the loop is the only writer
	select {
	case <-l.frames:
	default:
	}
	select {
	case l.frames <- f:
	default:
	}
}
