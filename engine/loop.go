package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/physics"
	"github.com/charmbracelet/log"
)

// InputSource samples the held inputs once per tick.
type InputSource func() physics.Intent

// EventHandler observes the events of each tick that produced any.
type EventHandler func(tick uint64, ev physics.Events)

// GameLoop runs session ticks back to back, sleeping after each for the rest
// of the tick budget but never less than the minimum sleep. Slow ticks are
// never skipped or caught up.
type GameLoop struct {
	session  *Session
	input    InputSource
	tickRate int
	minSleep time.Duration
	maxTicks uint64
	onEvents EventHandler
	sleeper  func(time.Duration)
	now      func() time.Time
	logger   *log.Logger

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	ticks    uint64
}

// LoopOption configures a GameLoop.
type LoopOption func(*GameLoop)

func WithTickRate(tps int) LoopOption {
	return func(g *GameLoop) {
		if tps > 0 {
			g.tickRate = tps
		}
	}
}

func WithMinSleep(d time.Duration) LoopOption {
	return func(g *GameLoop) { g.minSleep = d }
}

// WithMaxTicks stops the loop after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) LoopOption {
	return func(g *GameLoop) { g.maxTicks = n }
}

func WithEventHandler(fn EventHandler) LoopOption {
	return func(g *GameLoop) { g.onEvents = fn }
}

// WithSleeper replaces the wall-clock sleep between ticks. A sleeper that
// returns immediately runs the simulation as fast as possible.
func WithSleeper(fn func(time.Duration)) LoopOption {
	return func(g *GameLoop) { g.sleeper = fn }
}

func WithClock(now func() time.Time) LoopOption {
	return func(g *GameLoop) { g.now = now }
}

func WithLogger(l *log.Logger) LoopOption {
	return func(g *GameLoop) {
		if l != nil {
			g.logger = l
		}
	}
}

func NewGameLoop(session *Session, input InputSource, opts ...LoopOption) *GameLoop {
	g := &GameLoop{
		session:  session,
		input:    input,
		tickRate: config.Loop.TickRate,
		minSleep: config.Loop.MinSleep,
		now:      time.Now,
		logger:   log.Default(),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	if g.input == nil {
		g.input = func() physics.Intent { return physics.Intent{} }
	}
	return g
}

// Run ticks until Stop, the tick limit, or an error. A closed surface ends
// the loop cleanly, releases the session, and returns nil. Any other error
// also releases the session before it is returned. After Stop or the tick
// limit the session stays open and the caller owns Close.
func (g *GameLoop) Run() error {
	g.running.Store(true)
	defer g.running.Store(false)

	interval := time.Second / time.Duration(g.tickRate)
	g.logger.Info("game loop started", "tps", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.logger.Info("game loop stopped", "ticks", g.ticks)
			return nil
		default:
		}

		start := g.now()
		if err := g.Step(); err != nil {
			if errors.Is(err, ErrSurfaceClosed) {
				g.logger.Info("surface closed, stopping", "ticks", g.ticks)
				g.session.Close()
				return nil
			}
			g.logger.Error("game loop aborted", "ticks", g.ticks, "err", err)
			g.session.Close()
			return err
		}

		if g.maxTicks > 0 && g.ticks >= g.maxTicks {
			g.logger.Info("game loop finished", "ticks", g.ticks)
			return nil
		}

		wait := interval - g.now().Sub(start)
		if wait < g.minSleep {
			wait = g.minSleep
		}
		if !g.sleep(wait) {
			g.logger.Info("game loop stopped", "ticks", g.ticks)
			return nil
		}
	}
}

// Step runs a single tick.
func (g *GameLoop) Step() error {
	ev, err := g.session.TickFunc(g.input)
	if err != nil {
		return err
	}
	g.ticks++
	if ev != 0 && g.onEvents != nil {
		g.onEvents(g.ticks, ev)
	}
	return nil
}

func (g *GameLoop) sleep(d time.Duration) bool {
	if g.sleeper != nil {
		g.sleeper(d)
		return true
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-g.stopChan:
		return false
	case <-t.C:
		return true
	}
}

// Stop ends Run after the current tick. It is safe to call more than once
// and from another goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool { return g.running.Load() }

// Ticks returns the number of completed ticks.
func (g *GameLoop) Ticks() uint64 { return g.ticks }
