package navigation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/config"
)

// newTestCoordinator 直接构造协调器，便于检查会话内部状态
func newTestCoordinator(t *testing.T, initial int) (*Coordinator, *State, *anim.ManualClock) {
	t.Helper()
	entries := testEntries(5)
	state, err := NewState(len(entries), initial)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	clock := &anim.ManualClock{}
	c := NewCoordinator(clock, config.DefaultNavBarConfig().Metrics(), entries, state)
	c.Relayout(NewLayout(testWidth, testHeight, len(entries)), initial)
	return c, state, clock
}

// TestRapidReselection A→B 动画未过半时改选 C：B 的图标永远不会出现
func TestRapidReselection(t *testing.T) {
	c, state, clock := newTestCoordinator(t, 0)

	c.Animate(1)
	state.commit(1)
	if c.PendingContinuations() != 1 {
		t.Fatalf("pending = %d, want 1 (the swap)", c.PendingContinuations())
	}

	clock.Advance(100 * time.Millisecond)
	c.Update()

	c.Animate(2)
	state.commit(2)
	if target, ok := c.Target(); !ok || target != 2 {
		t.Fatalf("target = %d, %v; want 2", target, ok)
	}
	if c.PendingContinuations() != 1 {
		t.Errorf("pending after reselection = %d, want 1", c.PendingContinuations())
	}

	seen := map[string]bool{}
	for step := 0; step < 40; step++ {
		clock.Advance(10 * time.Millisecond)
		c.Update()
		seen[c.Glyph()] = true
	}

	if seen["B"] {
		t.Error("glyph of the superseded target was shown")
	}
	if c.Glyph() != "C" || c.Animating() {
		t.Errorf("end state glyph = %q animating = %v", c.Glyph(), c.Animating())
	}
	if state.TroughCenterX() != 250 || c.TranslationY() != 0 {
		t.Errorf("end state trough = %v translation = %v", state.TroughCenterX(), c.TranslationY())
	}
}

// TestReselectionContinuity 改选时槽位和图标位移从当前值继续，不跳变
func TestReselectionContinuity(t *testing.T) {
	c, state, clock := newTestCoordinator(t, 0)

	c.Animate(4)
	state.commit(4)
	clock.Advance(150 * time.Millisecond)
	c.Update()

	troughBefore := state.TroughCenterX()
	translationBefore := c.TranslationY()
	if troughBefore <= 50 || troughBefore >= 450 {
		t.Fatalf("trough %v should be mid-flight", troughBefore)
	}

	c.Animate(1)
	state.commit(1)
	c.Update()

	if math.Abs(state.TroughCenterX()-troughBefore) > 1e-9 {
		t.Errorf("trough jumped from %v to %v", troughBefore, state.TroughCenterX())
	}
	if math.Abs(c.TranslationY()-translationBefore) > 1e-9 {
		t.Errorf("translation jumped from %v to %v", translationBefore, c.TranslationY())
	}

	clock.Advance(testDuration)
	c.Update()
	if state.TroughCenterX() != 150 || c.Glyph() != "B" {
		t.Errorf("end state trough = %v glyph = %q", state.TroughCenterX(), c.Glyph())
	}
}

// TestReselectionAfterSwap 旧会话已换图标后改选，新会话重新下潜
func TestReselectionAfterSwap(t *testing.T) {
	c, state, clock := newTestCoordinator(t, 0)

	c.Animate(1)
	state.commit(1)
	clock.Advance(300 * time.Millisecond)
	c.Update()
	if c.Glyph() != "B" || c.Phase() != PhaseRising {
		t.Fatalf("glyph %q phase %v, want B rising", c.Glyph(), c.Phase())
	}
	rising := c.TranslationY()

	c.Animate(3)
	state.commit(3)
	c.Update()
	if c.Phase() != PhaseDiving || c.TranslationY() != rising {
		t.Errorf("new session should dive from %v, got phase %v at %v", rising, c.Phase(), c.TranslationY())
	}

	clock.Advance(testDuration / 2)
	c.Update()
	if c.Glyph() != "D" {
		t.Errorf("glyph after second swap = %q, want D", c.Glyph())
	}
}

func TestSnapCancelsSession(t *testing.T) {
	c, state, clock := newTestCoordinator(t, 0)

	c.Animate(3)
	state.commit(3)
	clock.Advance(50 * time.Millisecond)
	c.Update()

	c.Snap(3)
	if c.Animating() || c.PendingContinuations() != 0 {
		t.Error("snap should cancel the live session")
	}

	// 被取消的换图任务不会在之后触发
	c.Snap(0)
	clock.Advance(testDuration)
	c.Update()
	if c.Glyph() != "A" || state.TroughCenterX() != 50 {
		t.Errorf("cancelled session leaked: glyph %q trough %v", c.Glyph(), state.TroughCenterX())
	}
}

func TestDiveDepthFallsBackToConfiguredHeight(t *testing.T) {
	entries := testEntries(3)
	state, _ := NewState(3, 0)
	clock := &anim.ManualClock{}
	m := config.DefaultNavBarConfig().Metrics()
	c := NewCoordinator(clock, m, entries, state)

	if got := c.surfaceHeight(); got != m.Height {
		t.Errorf("unmeasured surface height = %v, want %v", got, m.Height)
	}
	c.Relayout(NewLayout(300, 80, 3), 0)
	if got := c.surfaceHeight(); got != 80 {
		t.Errorf("measured surface height = %v, want 80", got)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseIdle:     "idle",
		PhaseDiving:   "diving",
		PhaseSwapping: "swapping",
		PhaseRising:   "rising",
		Phase(42):     "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}

func TestState(t *testing.T) {
	if _, err := NewState(0, 0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("empty state err = %v, want ErrConfiguration", err)
	}

	s, err := NewState(3, 1)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if s.Count() != 3 || s.Selected() != 1 {
		t.Errorf("state = %d of %d", s.Selected(), s.Count())
	}
	if s.commit(1) {
		t.Error("committing the current index should report no change")
	}
	if !s.commit(2) || s.Selected() != 2 {
		t.Error("commit(2) failed")
	}

	s.setTrough(-5, 300)
	if s.TroughCenterX() != 0 {
		t.Errorf("trough clamped low = %v", s.TroughCenterX())
	}
	s.setTrough(400, 300)
	if s.TroughCenterX() != 300 {
		t.Errorf("trough clamped high = %v", s.TroughCenterX())
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout(400, 60, 4)
	want := []float64{50, 150, 250, 350}
	for i, c := range l.Centers() {
		if c != want[i] {
			t.Errorf("center %d = %v, want %v", i, c, want[i])
		}
	}

	unmeasured := NewLayout(0, 0, 4)
	if unmeasured.Measured() || len(unmeasured.Centers()) != 4 {
		t.Errorf("unmeasured layout = %+v", unmeasured)
	}
	if _, ok := unmeasured.ItemAt(10); ok {
		t.Error("unmeasured layout must not hit-test")
	}
}
