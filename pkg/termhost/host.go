package termhost

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/flownav/pkg/game"
	"github.com/gonewx/flownav/pkg/navigation"
)

// DefaultTick is the animation tick interval (~60 FPS).
const DefaultTick = 16 * time.Millisecond

// Host runs a NavBar on a tcell screen. All bar calls happen on the
// goroutine running Run; the ticker only posts interrupt events.
type Host struct {
	screen   tcell.Screen
	bar      *navigation.NavBar
	prefs    *game.PreferencesManager
	tones    *ToneManager
	renderer *Renderer
	tick     time.Duration
}

// NewHost wires bar to screen. tones may be nil.
func NewHost(screen tcell.Screen, bar *navigation.NavBar, prefs *game.PreferencesManager, tones *ToneManager) *Host {
	h := &Host{
		screen:   screen,
		bar:      bar,
		prefs:    prefs,
		tones:    tones,
		renderer: NewRenderer(),
		tick:     DefaultTick,
	}
	bar.Attach(h)
	return h
}

// Measure 实现 navigation.Host：宽度为列数，高度为导航栏的半行数
func (h *Host) Measure() (float64, float64) {
	cols, _ := h.screen.Size()
	return float64(cols), h.bar.Metrics().Height
}

// Paint 实现 navigation.Host：把一帧画到屏幕底部
func (h *Host) Paint(f navigation.Frame) {
	cols, rows := h.screen.Size()
	h.screen.Clear()

	g := h.renderer.Render(f, cols)
	top := rows - g.Rows
	for y := 0; y < g.Rows; y++ {
		if top+y < 0 {
			continue
		}
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			h.screen.SetContent(x, top+y, c.Rune, nil, c.Style())
		}
	}

	h.drawLine(0, h.titleLine())
	h.drawLine(1, h.statusLine())
	h.screen.Show()
}

// DispatchSelection 实现 navigation.Host：记录选择并播放提示音
func (h *Host) DispatchSelection(entry navigation.MenuEntry) {
	h.prefs.SetLastEntryID(entry.ID)
	if h.tones != nil && h.prefs.GetPreferences().SoundEnabled {
		h.tones.PlaySelect(h.bar.IndexOf(entry))
	}
	log.Printf("[Term] selected %s", entry.ID)
}

// Run processes events until the user quits or the screen is finalized.
func (h *Host) Run() {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(h.tick)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// 队列满时丢弃这一帧
				_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	h.bar.Draw(h)
	for {
		ev := h.screen.PollEvent()
		if ev == nil || !h.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one event and reports whether to keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		h.bar.Update()
		if h.bar.NeedsRedraw() {
			h.bar.Draw(h)
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.bar.Draw(h)
	case *tcell.EventKey:
		return h.HandleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			h.HandleClick(x, y)
		}
	}
	return true
}

// HandleKey applies a key press and reports whether to keep running.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.Step(-1)
	case tcell.KeyRight:
		h.Step(1)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'h':
			h.Step(-1)
		case r == 'l':
			h.Step(1)
		case r == 'a':
			h.prefs.SetAnimate(!h.prefs.GetPreferences().Animate)
			h.bar.Draw(h)
		case r == 's':
			h.prefs.SetSoundEnabled(!h.prefs.GetPreferences().SoundEnabled)
			h.bar.Draw(h)
		case r >= '1' && r <= '9':
			h.selectIndex(int(r - '1'))
		}
	}
	return true
}

// HandleClick selects the item under screen cell (x, y) when it lies in
// the bar. It reports whether an item was hit.
func (h *Host) HandleClick(x, y int) bool {
	_, rows := h.screen.Size()
	if y < rows-RowsFor(h.bar.Metrics().Height) || y >= rows {
		return false
	}
	i, ok := h.bar.ItemAt(float64(x) + 0.5)
	if !ok {
		return false
	}
	h.selectIndex(i)
	return true
}

// Step moves the selection by delta, stopping at either end.
func (h *Host) Step(delta int) {
	i := h.bar.Selected() + delta
	if i < 0 || i >= len(h.bar.Entries()) {
		return
	}
	h.selectIndex(i)
}

func (h *Host) selectIndex(i int) {
	if err := h.bar.SelectIndex(i, h.prefs.GetPreferences().Animate); err != nil {
		log.Printf("[Term] Warning: %v", err)
		return
	}
	h.bar.Draw(h)
}

func (h *Host) titleLine() string {
	e := h.bar.SelectedEntry()
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}

func (h *Host) statusLine() string {
	return fmt.Sprintf("←/→ h/l 1-9 click: select  a: animation %s  s: sound %s  q: quit",
		onOff(h.prefs.GetPreferences().Animate), onOff(h.soundOn()))
}

func (h *Host) soundOn() bool {
	return h.tones != nil && h.tones.Enabled() && h.prefs.GetPreferences().SoundEnabled
}

func (h *Host) drawLine(y int, s string) {
	cols, _ := h.screen.Size()
	style := tcell.StyleDefault
	x := 0
	for _, r := range s {
		if x >= cols {
			return
		}
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
