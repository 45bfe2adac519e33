// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，优先检测触摸
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ArrowDelta 返回本帧方向键产生的步进：左 -1，右 +1，同时按下或都没按为 0
func ArrowDelta() int {
	d := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		d--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		d++
	}
	return d
}
