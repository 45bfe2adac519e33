package navigation

import (
	"fmt"
	"log"

	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/config"
	"github.com/gonewx/flownav/pkg/wave"
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// ItemVisual is everything a host needs to paint one menu icon.
type ItemVisual struct {
	Entry   MenuEntry
	CenterX float64
	Icon    Rect // resting rect shifted by VerticalOffset
	wave.IconVisual
}

// ActionGlyph is the floating chip riding the trough.
type ActionGlyph struct {
	Glyph        string
	Rect         Rect
	TranslationY float64
}

// Frame is a snapshot of the bar for one paint cycle. It shares nothing
// with the NavBar, so hosts may keep it.
type Frame struct {
	Width         float64
	Height        float64
	TroughCenterX float64
	Selected      int
	Phase         Phase
	Outline       wave.Path
	Items         []ItemVisual
	Action        ActionGlyph
}

// Option customises New.
type Option func(*options)

type options struct {
	initial int
}

// WithInitialIndex selects item i at construction instead of the middle one.
func WithInitialIndex(i int) Option {
	return func(o *options) {
		o.initial = i
	}
}

// NavBar is the flowing bottom navigation bar. It is not safe for
// concurrent use; hosts call every method from their frame loop.
type NavBar struct {
	entries   []MenuEntry
	metrics   config.Metrics
	state     *State
	coord     *Coordinator
	layout    Layout
	listeners []func(MenuEntry)
}

// New builds a bar over entries. The middle entry (len/2) is selected
// unless WithInitialIndex says otherwise. The surface is unmeasured until
// the first Resize; frames rendered before that are flat rectangles.
func New(entries []MenuEntry, cfg config.NavBarConfig, clock anim.Clock, opts ...Option) (*NavBar, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: no clock", ErrConfiguration)
	}

	o := options{initial: len(entries) / 2}
	for _, opt := range opts {
		opt(&o)
	}

	state, err := NewState(len(entries), o.initial)
	if err != nil {
		return nil, err
	}

	owned := make([]MenuEntry, len(entries))
	copy(owned, entries)

	metrics := cfg.Metrics()
	b := &NavBar{
		entries: owned,
		metrics: metrics,
		state:   state,
		coord:   NewCoordinator(clock, metrics, owned, state),
		layout:  NewLayout(0, 0, len(owned)),
	}
	b.coord.Snap(state.Selected())

	log.Printf("[NavBar] created with %d entries, selected %d (%s)", len(owned), state.Selected(), owned[state.Selected()].ID)
	return b, nil
}

// Resize applies the measured surface size. The trough snaps to the
// selected item.
func (b *NavBar) Resize(width, height float64) {
	if width == b.layout.Width && height == b.layout.Height {
		return
	}
	b.layout = NewLayout(width, height, len(b.entries))
	b.coord.Relayout(b.layout, b.state.Selected())
	log.Printf("[NavBar] resized to %.0fx%.0f, item area %.1f", width, height, b.layout.ItemAreaWidth)
}

// SelectIndex selects item i. The selection commits immediately and
// listeners are notified before this returns; with animate the trough and
// glyph then travel over the following ticks. Selecting the current item
// does nothing.
func (b *NavBar) SelectIndex(i int, animate bool) error {
	if err := b.state.Validate(i); err != nil {
		return err
	}
	if i == b.state.Selected() {
		return nil
	}

	if animate && b.layout.Measured() && b.metrics.AnimationDuration > 0 {
		b.coord.Animate(i)
	} else {
		b.coord.Snap(i)
	}
	b.state.commit(i)

	entry := b.entries[i]
	for _, fn := range b.listeners {
		fn(entry)
	}
	return nil
}

// SelectEntry selects the item equal to entry. Same contract as
// SelectIndex.
func (b *NavBar) SelectEntry(entry MenuEntry, animate bool) error {
	i := b.IndexOf(entry)
	if i < 0 {
		return fmt.Errorf("%w: entry %q", ErrInvalidSelection, entry.ID)
	}
	return b.SelectIndex(i, animate)
}

// IndexOf returns the index of entry, or -1.
func (b *NavBar) IndexOf(entry MenuEntry) int {
	for i, e := range b.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

// IndexByID returns the index of the entry with id, or -1.
func (b *NavBar) IndexByID(id string) int {
	for i, e := range b.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// OnSelectionChanged registers fn to run once per accepted selection.
func (b *NavBar) OnSelectionChanged(fn func(MenuEntry)) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// Update advances the animation to the clock's current time. Hosts call it
// once per tick.
func (b *NavBar) Update() {
	b.coord.Update()
}

// NeedsRedraw reports whether the visible state changed since the last
// call. Hosts that repaint every frame can ignore it.
func (b *NavBar) NeedsRedraw() bool {
	return b.coord.TakeDirty()
}

// ItemAt maps a horizontal surface position to an item index.
func (b *NavBar) ItemAt(x float64) (int, bool) {
	return b.layout.ItemAt(x)
}

// Selected returns the committed index.
func (b *NavBar) Selected() int {
	return b.state.Selected()
}

// SelectedEntry returns the committed entry.
func (b *NavBar) SelectedEntry() MenuEntry {
	return b.entries[b.state.Selected()]
}

// Entries returns a copy of the menu.
func (b *NavBar) Entries() []MenuEntry {
	out := make([]MenuEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// TroughCenterX returns the trough position currently on screen.
func (b *NavBar) TroughCenterX() float64 {
	return b.state.TroughCenterX()
}

// Animating reports whether a transition is in flight.
func (b *NavBar) Animating() bool {
	return b.coord.Animating()
}

// Phase returns the current animation phase.
func (b *NavBar) Phase() Phase {
	return b.coord.Phase()
}

// Metrics returns the resolved pixel metrics.
func (b *NavBar) Metrics() config.Metrics {
	return b.metrics
}

// Layout returns the measured surface geometry.
func (b *NavBar) Layout() Layout {
	return b.layout
}

// RenderFrame snapshots the current outline and visuals.
func (b *NavBar) RenderFrame() Frame {
	m := b.metrics
	l := b.layout
	trough := b.state.TroughCenterX()
	height := l.Height

	f := Frame{
		Width:         l.Width,
		Height:        height,
		TroughCenterX: trough,
		Selected:      b.state.Selected(),
		Phase:         b.coord.Phase(),
		Outline: wave.BuildPath(wave.Params{
			Width:         l.Width,
			Height:        height,
			TopPadding:    m.WaveTopPadding,
			TroughDepth:   m.TroughDepth,
			ItemAreaWidth: l.ItemAreaWidth,
			TroughCenterX: trough,
			ItemCount:     l.ItemCount,
		}),
		Items: make([]ItemVisual, len(b.entries)),
	}

	iconTop := height - m.BottomPadding - m.IconSize
	visuals := b.coord.Visuals()
	for i, e := range b.entries {
		cx := l.Center(i)
		v := visuals[i]
		f.Items[i] = ItemVisual{
			Entry:      e,
			CenterX:    cx,
			Icon:       Rect{X: cx - m.IconSize/2, Y: iconTop + v.VerticalOffset, W: m.IconSize, H: m.IconSize},
			IconVisual: v,
		}
	}

	ty := b.coord.TranslationY()
	f.Action = ActionGlyph{
		Glyph:        b.coord.Glyph(),
		Rect:         Rect{X: wave.ActionGlyphX(trough, m.IconSize), Y: ty, W: m.IconSize, H: m.IconSize},
		TranslationY: ty,
	}
	return f
}
