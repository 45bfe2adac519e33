// Package wave builds the navigation bar's background outline and maps the
// trough position onto per-item icon visuals.
//
// Both entry points are pure: identical inputs always produce identical
// output, and neither keeps state between calls.
package wave

import "github.com/gonewx/flownav/pkg/utils"

// Params describes one outline request. All values are surface pixels.
type Params struct {
	Width         float64
	Height        float64
	TopPadding    float64 // distance from the surface top to the flat wave edge
	TroughDepth   float64
	ItemAreaWidth float64
	TroughCenterX float64
	ItemCount     int
}

// BuildPath returns the closed outline for p.
//
// The outline runs from the bottom-left corner up to the flat top edge,
// dips through two mirrored cubics centred on TroughCenterX, continues to
// the right edge and returns along the bottom. An unmeasured surface
// (Width ≤ 0, no items or no item width) yields the plain rectangle
// (0,0)-(Width,Height) so the first paint before layout never fails.
func BuildPath(p Params) Path {
	if p.Width <= 0 || p.ItemCount <= 0 || p.ItemAreaWidth <= 0 {
		return flatRect(p.Width, p.Height)
	}

	var path Path
	half := p.ItemAreaWidth / 2
	preShift := p.ItemAreaWidth / 3
	cx := p.TroughCenterX

	path.MoveTo(0, p.Height)
	path.LineTo(0, p.TopPadding)

	startX := utils.Clamp(cx-half-preShift, 0, p.Width)
	path.LineTo(startX, p.TopPadding)

	path.CubicTo(
		cx-preShift, p.TopPadding,
		cx-half, p.Height,
		cx, p.Height-p.TroughDepth/2,
	)

	endX := cx + half + preShift
	if endX > p.Width {
		endX = p.Width
	}
	path.CubicTo(
		cx+half, p.Height,
		cx+preShift, p.TopPadding,
		endX, p.TopPadding,
	)

	path.LineTo(p.Width, p.TopPadding)
	path.LineTo(p.Width, p.Height)
	path.LineTo(0, p.Height)
	path.Close()
	return path
}

func flatRect(width, height float64) Path {
	var path Path
	path.MoveTo(0, height)
	path.LineTo(0, 0)
	path.LineTo(width, 0)
	path.LineTo(width, height)
	path.LineTo(0, height)
	path.Close()
	return path
}
