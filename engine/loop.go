// Package engine owns the frame loop: input polling, resize handling,
// fixed-interval pacing, simulation stepping, and rendering, once per frame
// until quit. It is the only component that advances time-dependent state.
package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/wilark1207/terminal-rain-thunder/constant"
	"github.com/wilark1207/terminal-rain-thunder/render"
	"github.com/wilark1207/terminal-rain-thunder/sim"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionToggle
)

// Config carries the frame loop's collaborators. Zero-value fields get
// production defaults in New.
type Config struct {
	Clock  Clock
	Rand   *rand.Rand
	Logger *logrus.Logger

	// OnBoltSpawn fires once per spawned bolt, from the loop thread
	OnBoltSpawn func()
}

// Game runs the weather scene. All state except the resize flag is touched
// only from the loop thread; the flag is set from the event pump goroutine
// and consumed once at the top of each frame.
type Game struct {
	screen      tcell.Screen
	renderer    *render.Renderer
	clock       Clock
	rng         *rand.Rand
	log         *logrus.Logger
	onBoltSpawn func()

	storm      *sim.Storm
	thunder    bool
	rows, cols int

	resizePending atomic.Bool
	events        chan tcell.Event
}

// New creates a game on an initialized screen
func New(screen tcell.Screen, renderer *render.Renderer, cfg Config) *Game {
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicClock()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
		cfg.Logger.SetLevel(logrus.PanicLevel)
	}
	g := &Game{
		screen:      screen,
		renderer:    renderer,
		clock:       cfg.Clock,
		rng:         cfg.Rand,
		log:         cfg.Logger,
		onBoltSpawn: cfg.OnBoltSpawn,
		storm:       sim.NewStorm(cfg.Rand),
		events:      make(chan tcell.Event, 128),
	}
	g.cols, g.rows = screen.Size()
	return g
}

// Run drives the frame loop until a quit key arrives
func (g *Game) Run() {
	go g.pumpEvents()

	last := g.clock.Now()
	for {
		if g.resizePending.Swap(false) {
			g.handleResize()
		}

		switch g.pollInput() {
		case actionQuit:
			g.log.Debug("quit requested")
			return
		case actionToggle:
			g.thunder = !g.thunder
			g.screen.Clear()
			g.screen.Sync()
			g.log.WithField("thunder", g.thunder).Debug("thunderstorm toggled")
		}

		last = g.pace(last)
		g.step(g.clock.Now())
	}
}

// step advances the simulation by one frame and renders it, bolts before
// raindrops so rain paints over a bolt where they overlap
func (g *Game) step(now time.Time) {
	if g.thunder && g.storm.MaybeSpawnBolt(g.rows, g.cols, now) {
		g.log.WithField("bolts", len(g.storm.Bolts)).Debug("bolt spawned")
		if g.onBoltSpawn != nil {
			g.onBoltSpawn()
		}
	}
	g.storm.UpdateBolts(now)

	g.storm.SpawnRain(g.rows, g.cols, g.thunder)
	g.storm.AdvanceRain(g.rows)

	g.renderer.Draw(g.rows, g.cols, g.thunder, g.storm, now)
}

// pumpEvents feeds terminal events to the loop. Resize notifications only
// set the pending flag; the pump never touches simulation or screen state.
// PollEvent returns nil once the screen is finalized, ending the goroutine.
func (g *Game) pumpEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			g.resizePending.Store(true)
			continue
		}
		select {
		case g.events <- ev:
		default:
			// Input flooding faster than the frame rate is dropped
		}
	}
}

// pollInput consumes at most one buffered event without blocking
func (g *Game) pollInput() action {
	select {
	case ev := <-g.events:
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			return actionNone
		}
		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyRune:
			switch key.Rune() {
			case 'q', 'Q':
				return actionQuit
			case 't', 'T':
				return actionToggle
			}
		}
	default:
	}
	return actionNone
}

// handleResize adopts the new dimensions and drops every entity, since all
// stored coordinates were derived from the old bounds
func (g *Game) handleResize() {
	g.screen.Sync()
	g.cols, g.rows = g.screen.Size()
	g.storm.Clear()
	g.log.WithFields(logrus.Fields{"rows": g.rows, "cols": g.cols}).Debug("resize acknowledged")
}

// pace enforces the fixed frame interval: when a frame's work finished
// early the loop sleeps out the remaining budget, and never a negative one.
// Returns the start of the next frame.
func (g *Game) pace(last time.Time) time.Time {
	if remaining := constant.FrameInterval - g.clock.Now().Sub(last); remaining > 0 {
		g.clock.Sleep(remaining)
	}
	return g.clock.Now()
}
