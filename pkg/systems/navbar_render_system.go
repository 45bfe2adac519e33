package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/flownav/pkg/game"
	"github.com/gonewx/flownav/pkg/navigation"
	"github.com/gonewx/flownav/pkg/wave"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 导航栏视觉常量
var (
	// 波浪底色
	navBarColor = color.RGBA{R: 98, G: 0, B: 238, A: 255}

	// 菜单图标底色
	navIconColor = color.RGBA{R: 187, G: 134, B: 252, A: 255}

	// 图标文字颜色
	navIconTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// 浮动按钮底色
	navActionColor = color.RGBA{R: 3, G: 218, B: 197, A: 255}

	// 浮动按钮文字颜色
	navActionTextColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// 图标文字字号相对图标尺寸的比例
const navGlyphFontRatio = 0.45

// NavBarRenderSystem 导航栏渲染系统
// 把 navigation.Frame 画到 ebiten 图像上
type NavBarRenderSystem struct {
	fonts *game.FontCache // 可为 nil，退化为调试字体

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewNavBarRenderSystem 创建导航栏渲染系统
func NewNavBarRenderSystem(fonts *game.FontCache) *NavBarRenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &NavBarRenderSystem{
		fonts:         fonts,
		whiteImage:    white,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SurfaceRect 返回导航栏在屏幕上占用的区域（贴底）
func SurfaceRect(screen image.Rectangle, barHeight float64) image.Rectangle {
	h := int(barHeight + 0.5)
	if h > screen.Dy() {
		h = screen.Dy()
	}
	return image.Rect(screen.Min.X, screen.Max.Y-h, screen.Max.X, screen.Max.Y)
}

// Draw 在 surface 上绘制一帧
// surface 通常是屏幕的子图像，超出部分（下潜中的浮动按钮）被裁掉
func (s *NavBarRenderSystem) Draw(surface *ebiten.Image, f navigation.Frame) {
	origin := surface.Bounds().Min
	ox, oy := float32(origin.X), float32(origin.Y)

	s.drawOutline(surface, f.Outline, ox, oy)

	for _, it := range f.Items {
		if it.Opacity <= 0 {
			continue
		}
		s.drawChip(surface, it.Icon, ox, oy, FadeColor(navIconColor, it.Opacity))
		s.drawGlyph(surface, it.Entry.Glyph, it.Icon, ox, oy, FadeColor(navIconTextColor, it.Opacity))
	}

	s.drawChip(surface, f.Action.Rect, ox, oy, navActionColor)
	s.drawGlyph(surface, f.Action.Glyph, f.Action.Rect, ox, oy, navActionTextColor)
}

// drawOutline 填充波浪轮廓
func (s *NavBarRenderSystem) drawOutline(dst *ebiten.Image, outline wave.Path, ox, oy float32) {
	s.path = vector.Path{}
	AppendOutline(&s.path, outline, ox, oy)

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := colorScale(navBarColor)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	dst.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, op)
}

// drawChip 绘制圆形底座
func (s *NavBarRenderSystem) drawChip(dst *ebiten.Image, r navigation.Rect, ox, oy float32, clr color.Color) {
	cx := ox + float32(r.X+r.W/2)
	cy := oy + float32(r.Y+r.H/2)
	vector.DrawFilledCircle(dst, cx, cy, float32(r.W/2), clr, true)
}

// drawGlyph 在矩形中心绘制图标文字
func (s *NavBarRenderSystem) drawGlyph(dst *ebiten.Image, glyph string, r navigation.Rect, ox, oy float32, clr color.Color) {
	if glyph == "" {
		return
	}
	centerX := float64(ox) + r.X + r.W/2
	centerY := float64(oy) + r.Y + r.H/2

	if s.fonts == nil {
		// 字体不可用时使用调试字体（固定 6x16 像素）
		ebitenutil.DebugPrintAt(dst, glyph, int(centerX)-3*len(glyph), int(centerY)-8)
		return
	}

	face := s.fonts.BoldFace(r.H * navGlyphFontRatio)
	w, h := text.Measure(glyph, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-w/2, centerY-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, glyph, face, op)
}

// AppendOutline 把 wave.Path 转成 ebiten 的 vector.Path，并平移 (ox, oy)
func AppendOutline(dst *vector.Path, p wave.Path, ox, oy float32) {
	for _, seg := range p.Segments {
		pts := seg.Points
		switch seg.Kind {
		case wave.SegmentMoveTo:
			dst.MoveTo(ox+float32(pts[0].X), oy+float32(pts[0].Y))
		case wave.SegmentLineTo:
			dst.LineTo(ox+float32(pts[0].X), oy+float32(pts[0].Y))
		case wave.SegmentCubicTo:
			dst.CubicTo(
				ox+float32(pts[0].X), oy+float32(pts[0].Y),
				ox+float32(pts[1].X), oy+float32(pts[1].Y),
				ox+float32(pts[2].X), oy+float32(pts[2].Y),
			)
		case wave.SegmentClose:
			dst.Close()
		}
	}
}

// FadeColor 按不透明度缩放颜色（预乘 alpha）
func FadeColor(c color.RGBA, opacity float64) color.RGBA {
	switch {
	case opacity <= 0:
		return color.RGBA{}
	case opacity >= 1:
		return c
	}
	scale := func(v uint8) uint8 {
		return uint8(float64(v)*opacity + 0.5)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// colorScale 把颜色转换为顶点颜色分量
func colorScale(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
