package navigation

import (
	"log"
	"time"

	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/wave"
)

// diveDepthFactor is how far below the surface top the action glyph dives,
// in multiples of the surface height.
const diveDepthFactor = 1.5

// Phase is the coordinator's position on the session timeline.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDiving
	PhaseSwapping
	PhaseRising
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDiving:
		return "diving"
	case PhaseSwapping:
		return "swapping"
	case PhaseRising:
		return "rising"
	}
	return "unknown"
}

// session is one selection transition. Everything it schedules runs under
// token; cancelling the token silences the tweens and the pending swap.
type session struct {
	target int
	fromX  float64
	toX    float64
	start  time.Duration

	waveDuration time.Duration
	diveDuration time.Duration
	riseDuration time.Duration

	token    *anim.CancelToken
	timeline *anim.Timeline

	wave    anim.Tween
	dive    anim.Tween
	rise    anim.Tween
	swapped bool
}

// Coordinator choreographs the trough, the action glyph and the icon
// visuals. It is the only writer of the trough position, the IconVisual
// slice and the glyph state; readers get copies.
type Coordinator struct {
	clock   anim.Clock
	metrics config.Metrics
	entries []MenuEntry
	state   *State
	layout  Layout

	visuals      []wave.IconVisual
	glyph        string
	translationY float64

	session *session
	dirty   bool
}

// NewCoordinator creates an idle coordinator writing into state.
func NewCoordinator(clock anim.Clock, metrics config.Metrics, entries []MenuEntry, state *State) *Coordinator {
	return &Coordinator{
		clock:   clock,
		metrics: metrics,
		entries: entries,
		state:   state,
		layout:  NewLayout(0, 0, len(entries)),
		visuals: make([]wave.IconVisual, len(entries)),
	}
}

// surfaceHeight falls back to the configured height until measured.
func (c *Coordinator) surfaceHeight() float64 {
	if c.layout.Height > 0 {
		return c.layout.Height
	}
	return c.metrics.Height
}

// Relayout applies a new surface geometry. Any running session is
// cancelled and everything snaps to the selected item, as the old
// positions no longer mean anything on the new surface.
func (c *Coordinator) Relayout(l Layout, selected int) {
	c.layout = l
	c.snapTo(selected)
}

// Animate starts a session towards target, superseding any live session.
// The new session starts from the current trough position and glyph
// translation, so a mid-flight reselection continues smoothly.
func (c *Coordinator) Animate(target int) {
	now := c.clock.Now()
	if prev := c.session; prev != nil {
		prev.token.Cancel()
		log.Printf("[Coordinator] session to %d cancelled by reselection to %d", prev.target, target)
	}

	d := c.metrics.AnimationDuration
	half := d / 2
	depth := c.surfaceHeight() * diveDepthFactor

	s := &session{
		target:       target,
		fromX:        c.state.TroughCenterX(),
		toX:          c.layout.Center(target),
		start:        now,
		waveDuration: d,
		diveDuration: half,
		riseDuration: half,
		token:        anim.NewCancelToken(),
	}
	s.timeline = anim.NewTimeline(now, s.token)
	s.wave = anim.Tween{From: s.fromX, To: s.toX, Start: now, Duration: d, Ease: c.metrics.Easing}
	s.dive = anim.Tween{From: c.translationY, To: depth, Start: now, Duration: half, Ease: c.metrics.Easing}

	// 中点：替换图标，然后从谷底升起
	s.timeline.Schedule(half, func(at time.Duration) {
		c.glyph = c.entries[s.target].Glyph
		s.swapped = true
		s.rise = anim.Tween{From: depth, To: 0, Start: at, Duration: s.riseDuration, Ease: c.metrics.Easing}
		c.dirty = true
	})

	c.session = s
	log.Printf("[Coordinator] session to %d started: x %.1f -> %.1f over %v", target, s.fromX, s.toX, d)
}

// Snap moves everything to target immediately, cancelling any session.
func (c *Coordinator) Snap(target int) {
	c.snapTo(target)
}

func (c *Coordinator) snapTo(target int) {
	if s := c.session; s != nil {
		s.token.Cancel()
		c.session = nil
	}
	c.state.setTrough(c.layout.Center(target), c.layout.Width)
	c.glyph = c.entries[target].Glyph
	c.translationY = 0
	c.remapVisuals()
	c.dirty = true
}

// Update advances the live session to the clock's current time. Within a
// tick the dive is sampled first, then due timeline tasks run (the glyph
// swap), then the rise, so dive < swap < rise always holds.
func (c *Coordinator) Update() {
	s := c.session
	if s == nil || !s.token.Valid() {
		return
	}
	now := c.clock.Now()

	c.state.setTrough(s.wave.ValueAt(now), c.layout.Width)
	c.remapVisuals()

	if !s.swapped {
		c.translationY = s.dive.ValueAt(now)
	}
	s.timeline.Advance(now)
	if !s.token.Valid() {
		return
	}
	if s.swapped {
		c.translationY = s.rise.ValueAt(now)
	}
	c.dirty = true

	if s.swapped && s.wave.Done(now) && s.rise.Done(now) {
		s.token.Cancel()
		c.session = nil
		log.Printf("[Coordinator] session to %d finished", s.target)
	}
}

func (c *Coordinator) remapVisuals() {
	c.visuals = wave.MapIconVisuals(c.visuals, c.state.TroughCenterX(), c.layout.Centers(), c.layout.ItemAreaWidth, c.metrics.Height)
}

// Phase returns where the live session is on its timeline.
func (c *Coordinator) Phase() Phase {
	s := c.session
	if s == nil {
		return PhaseIdle
	}
	if !s.swapped {
		return PhaseDiving
	}
	if s.rise.Progress(c.clock.Now()) == 0 {
		return PhaseSwapping
	}
	return PhaseRising
}

// Animating reports whether a session is live.
func (c *Coordinator) Animating() bool {
	return c.session != nil
}

// Target returns the live session's target index.
func (c *Coordinator) Target() (int, bool) {
	if c.session == nil {
		return 0, false
	}
	return c.session.target, true
}

// PendingContinuations returns how many scheduled tasks the live session
// still has.
func (c *Coordinator) PendingContinuations() int {
	if c.session == nil {
		return 0
	}
	return c.session.timeline.Pending()
}

// Visuals returns a copy of the per-item visuals.
func (c *Coordinator) Visuals() []wave.IconVisual {
	out := make([]wave.IconVisual, len(c.visuals))
	copy(out, c.visuals)
	return out
}

// Glyph returns the glyph currently shown by the action chip.
func (c *Coordinator) Glyph() string {
	return c.glyph
}

// TranslationY returns the action chip's vertical translation.
func (c *Coordinator) TranslationY() float64 {
	return c.translationY
}

// TakeDirty reports whether anything visible changed since the last call
// and clears the flag.
func (c *Coordinator) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
