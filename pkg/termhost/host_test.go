package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/flownav/pkg/game"
)

const screenRows = 12

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testCols, screenRows)

	bar, _ := newTestBar(t)
	h := NewHost(screen, bar, game.NewPreferencesManager(nil), nil)
	return h, screen
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func lineAt(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var out []rune
	for x := 0; x < w; x++ {
		r := cells[y*w+x].Runes
		if len(r) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, r[0])
	}
	return string(out)
}

func TestHostMeasure(t *testing.T) {
	h, _ := newTestHost(t)
	w, ht := h.Measure()
	if w != testCols {
		t.Errorf("width = %v, want %d", w, testCols)
	}
	if RowsFor(ht) != testRows {
		t.Errorf("height %v spans %d rows", ht, RowsFor(ht))
	}
}

func TestHostPaint(t *testing.T) {
	h, screen := newTestHost(t)
	h.bar.Draw(h)

	if r := runeAt(screen, 0, screenRows-1); r != blockFull {
		t.Errorf("bottom-left = %q, want full block", r)
	}
	// 导航栏贴底，上方保留给标题和状态行
	if r := runeAt(screen, 0, screenRows-testRows-1); r == blockFull || r == blockLower {
		t.Errorf("row above the bar = %q", r)
	}
	if got := lineAt(screen, 0); got[:6] != "create" {
		t.Errorf("title line = %q", got)
	}
}

func TestHostKeys(t *testing.T) {
	tests := []struct {
		name        string
		ev          *tcell.EventKey
		want        int
		keepRunning bool
	}{
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), 3, true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), 1, true},
		{"vi right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), 3, true},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), 1, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), 4, true},
		{"digit out of range", tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone), 2, true},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 2, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 2, false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t)
			if got := h.HandleKey(tt.ev); got != tt.keepRunning {
				t.Errorf("HandleKey = %v, want %v", got, tt.keepRunning)
			}
			if got := h.bar.Selected(); got != tt.want {
				t.Errorf("Selected = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHostStepStopsAtEnds(t *testing.T) {
	h, _ := newTestHost(t)
	for i := 0; i < 10; i++ {
		h.Step(1)
	}
	if got := h.bar.Selected(); got != 4 {
		t.Errorf("Selected = %d, want 4", got)
	}
	for i := 0; i < 10; i++ {
		h.Step(-1)
	}
	if got := h.bar.Selected(); got != 0 {
		t.Errorf("Selected = %d, want 0", got)
	}
}

func TestHostToggles(t *testing.T) {
	h, _ := newTestHost(t)
	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if h.prefs.GetPreferences().Animate {
		t.Error("'a' should turn animation off")
	}
	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if h.prefs.GetPreferences().SoundEnabled {
		t.Error("'s' should turn sound off")
	}

	// 关闭动画后选择立即完成
	h.Step(1)
	if h.bar.Animating() {
		t.Error("selection should snap with animation off")
	}
}

func TestHostClick(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		hit  bool
		want int
	}{
		{"first item", 4, screenRows - 2, true, 0},
		{"last item", 36, screenRows - 1, true, 4},
		{"above the bar", 4, 1, false, 2},
		{"below the screen", 4, screenRows, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t)
			if got := h.HandleClick(tt.x, tt.y); got != tt.hit {
				t.Errorf("HandleClick = %v, want %v", got, tt.hit)
			}
			if got := h.bar.Selected(); got != tt.want {
				t.Errorf("Selected = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHostDispatchRecordsSelection(t *testing.T) {
	h, _ := newTestHost(t)
	h.Step(1)
	if got := h.prefs.GetPreferences().LastEntryID; got != "inbox" {
		t.Errorf("LastEntryID = %q, want inbox", got)
	}
}

func TestHostInterruptAndResize(t *testing.T) {
	h, screen := newTestHost(t)

	h.Step(2)
	if !h.bar.Animating() {
		t.Fatal("selection should animate")
	}

	ev := tcell.NewEventInterrupt(nil)
	if !h.HandleEvent(ev) {
		t.Fatal("interrupt should keep the loop running")
	}
	screen.SetSize(60, screenRows)
	if !h.HandleEvent(tcell.NewEventResize(60, screenRows)) {
		t.Fatal("resize should keep the loop running")
	}
	// 尺寸变化取消动画并直接落到目标
	if h.bar.Animating() || h.bar.TroughCenterX() != 54 {
		t.Errorf("after resize animating=%v trough=%v", h.bar.Animating(), h.bar.TroughCenterX())
	}
	if r := runeAt(screen, 0, screenRows-1); r != blockFull {
		t.Errorf("bar not repainted after resize, got %q", r)
	}
}

func TestHostRunQuits(t *testing.T) {
	h, screen := newTestHost(t)
	h.tick = time.Millisecond

	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
