package scenes

import (
	"image/color"

	"github.com/gonewx/flownav/pkg/game"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 页面标题淡入时长（秒）
const pageFadeInSeconds = 0.25

// 页面标题字号
const pageTitleFontSize = 32.0

// 页面背景色，按菜单项序号循环使用
var pagePalette = []color.RGBA{
	{R: 245, G: 245, B: 250, A: 255},
	{R: 232, G: 245, B: 233, A: 255},
	{R: 255, G: 243, B: 224, A: 255},
	{R: 227, G: 242, B: 253, A: 255},
	{R: 252, G: 228, B: 236, A: 255},
}

var pageTitleColor = color.RGBA{R: 33, G: 33, B: 33, A: 255}

// PageScene 目的地页面
// 每个菜单项对应一个页面，由 SceneManager 在导航时创建
type PageScene struct {
	entry   navigation.MenuEntry
	index   int
	fonts   *game.FontCache
	elapsed float64
}

// NewPageScene 创建页面场景
func NewPageScene(entry navigation.MenuEntry, index int, fonts *game.FontCache) *PageScene {
	return &PageScene{entry: entry, index: index, fonts: fonts}
}

// Entry 返回页面对应的菜单项
func (s *PageScene) Entry() navigation.MenuEntry {
	return s.entry
}

// Update 推进淡入计时
func (s *PageScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
}

// Draw 绘制页面背景和标题
func (s *PageScene) Draw(screen *ebiten.Image) {
	screen.Fill(PageColor(s.index))

	title := s.entry.Label
	if title == "" {
		title = s.entry.ID
	}

	b := screen.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 3

	if s.fonts == nil {
		ebitenutil.DebugPrintAt(screen, title, int(cx)-3*len(title), int(cy))
		return
	}

	face := s.fonts.Face(pageTitleFontSize)
	w, h := text.Measure(title, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(pageTitleColor)
	op.ColorScale.ScaleAlpha(float32(PageFadeIn(s.elapsed)))
	text.Draw(screen, title, face, op)
}

// PageColor 返回第 index 个页面的背景色
func PageColor(index int) color.RGBA {
	if index < 0 {
		index = -index
	}
	return pagePalette[index%len(pagePalette)]
}

// PageFadeIn 返回标题在 elapsed 秒时的不透明度
func PageFadeIn(elapsed float64) float64 {
	return utils.EaseOutCubic(utils.Clamp(elapsed/pageFadeInSeconds, 0, 1))
}
