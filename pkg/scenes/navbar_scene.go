package scenes

import (
	"fmt"
	"image"
	"log"

	"github.com/gonewx/flownav/pkg/anim"
	"github.com/gonewx/flownav/pkg/game"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/systems"
	"github.com/gonewx/flownav/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NavBarScene 导航外壳场景
//
// 上方绘制当前目的地页面，底部绘制波浪导航栏。场景同时是导航栏的
// Host：Draw 时提供测量尺寸并接收绘制帧。
type NavBarScene struct {
	bar      *navigation.NavBar
	clock    *anim.ManualClock
	pages    *game.SceneManager
	prefs    *game.PreferencesManager
	renderer *systems.NavBarRenderSystem
	audio    *game.AudioManager // 可为 nil

	screen image.Rectangle // 最近一次 Draw 的屏幕区域
	target *ebiten.Image   // 当前帧的导航栏绘制目标
}

// NewNavBarScene 创建导航外壳场景
//
// clock 由场景按 Update 的 deltaTime 推进，bar 必须使用同一个时钟。
func NewNavBarScene(bar *navigation.NavBar, clock *anim.ManualClock, pages *game.SceneManager, prefs *game.PreferencesManager, renderer *systems.NavBarRenderSystem) *NavBarScene {
	s := &NavBarScene{
		bar:      bar,
		clock:    clock,
		pages:    pages,
		prefs:    prefs,
		renderer: renderer,
	}
	bar.Attach(s)
	return s
}

// SetAudioManager 设置选择提示音的播放器
func (s *NavBarScene) SetAudioManager(am *game.AudioManager) {
	s.audio = am
}

// Update 处理输入，然后推进时钟、导航栏和页面
func (s *NavBarScene) Update(deltaTime float64) {
	s.handleInput()
	s.advance(deltaTime)
}

func (s *NavBarScene) handleInput() {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.HandlePointer(x, y)
	}
	if d := utils.ArrowDelta(); d != 0 {
		s.Step(d)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		s.ToggleAnimate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.ToggleSound()
	}
}

// advance 输入之后推进一帧
func (s *NavBarScene) advance(deltaTime float64) {
	s.clock.AdvanceSeconds(deltaTime)
	s.bar.Update()
	s.pages.Update(deltaTime)
}

// Draw 绘制页面和导航栏
func (s *NavBarScene) Draw(screen *ebiten.Image) {
	s.screen = screen.Bounds()
	s.pages.Draw(screen)

	s.target = screen.SubImage(s.barRect()).(*ebiten.Image)
	s.bar.Draw(s)
	s.target = nil

	ebitenutil.DebugPrintAt(screen, s.statusLine(), s.screen.Min.X+8, s.screen.Min.Y+8)
}

// Measure 实现 navigation.Host
func (s *NavBarScene) Measure() (float64, float64) {
	return float64(s.screen.Dx()), s.bar.Metrics().Height
}

// Paint 实现 navigation.Host
func (s *NavBarScene) Paint(frame navigation.Frame) {
	if s.target == nil || s.renderer == nil {
		return
	}
	s.renderer.Draw(s.target, frame)
}

// DispatchSelection 实现 navigation.Host，记住最近的选择
func (s *NavBarScene) DispatchSelection(entry navigation.MenuEntry) {
	s.prefs.SetLastEntryID(entry.ID)
	if s.audio != nil {
		s.audio.PlaySelect(s.bar.IndexOf(entry))
	}
	log.Printf("[NavBarScene] selected %s", entry.ID)
}

// HandlePointer 处理屏幕坐标 (x, y) 上的点击或触摸
// 返回是否命中了某个菜单项
func (s *NavBarScene) HandlePointer(x, y int) bool {
	r := s.barRect()
	if !image.Pt(x, y).In(r) {
		return false
	}
	i, ok := s.bar.ItemAt(float64(x - r.Min.X))
	if !ok {
		return false
	}
	s.selectIndex(i)
	return true
}

// Step 左右移动选择，到两端停止
func (s *NavBarScene) Step(delta int) {
	i := s.bar.Selected() + delta
	n := len(s.bar.Entries())
	if i < 0 || i >= n {
		return
	}
	s.selectIndex(i)
}

// ToggleAnimate 切换选择动画
func (s *NavBarScene) ToggleAnimate() {
	p := s.prefs.GetPreferences()
	s.prefs.SetAnimate(!p.Animate)
	log.Printf("[NavBarScene] animate = %v", p.Animate)
}

// ToggleSound 切换选择提示音
func (s *NavBarScene) ToggleSound() {
	p := s.prefs.GetPreferences()
	s.prefs.SetSoundEnabled(!p.SoundEnabled)
	log.Printf("[NavBarScene] sound = %v", p.SoundEnabled)
}

// SaveOnExit 实现 game.Saveable
func (s *NavBarScene) SaveOnExit() bool {
	if err := s.prefs.Save(); err != nil {
		log.Printf("[NavBarScene] Warning: failed to save preferences: %v", err)
		return false
	}
	return true
}

func (s *NavBarScene) selectIndex(i int) {
	if err := s.bar.SelectIndex(i, s.prefs.GetPreferences().Animate); err != nil {
		log.Printf("[NavBarScene] Warning: %v", err)
	}
}

// barRect 返回导航栏在屏幕上的区域
func (s *NavBarScene) barRect() image.Rectangle {
	return systems.SurfaceRect(s.screen, s.bar.Metrics().Height)
}

func (s *NavBarScene) statusLine() string {
	p := s.prefs.GetPreferences()
	if utils.IsMobile() {
		return fmt.Sprintf("tap to navigate   sound %s", onOff(p.SoundEnabled && s.audio != nil))
	}
	return fmt.Sprintf("<- -> / click: navigate   A: animation %s   S: sound %s   F11: fullscreen",
		onOff(p.Animate), onOff(p.SoundEnabled && s.audio != nil))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
