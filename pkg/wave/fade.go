package wave

import "math"

// IconVisual is the per-frame look of one menu icon.
type IconVisual struct {
	Opacity        float64 // 0 = hidden under the action glyph, 1 = fully shown
	VerticalOffset float64 // added to the icon's resting top edge
}

// IconFade maps the distance between the trough and one item centre onto
// that item's visual. Icons within half an item width of the trough are
// hidden, icons a full item width away or more are opaque, and the band in
// between ramps linearly. The offset grows as the icon fades:
// (1 - opacity) * baseHeight / 6.
func IconFade(troughCenterX, itemCenterX, itemAreaWidth, baseHeight float64) IconVisual {
	distance := math.Abs(troughCenterX - itemCenterX)
	half := itemAreaWidth / 2

	var opacity float64
	switch {
	case distance < half:
		opacity = 0
	case distance < itemAreaWidth:
		opacity = (distance - half) / half
	default:
		opacity = 1
	}

	return IconVisual{
		Opacity:        opacity,
		VerticalOffset: (1 - opacity) * baseHeight / 6,
	}
}

// MapIconVisuals evaluates IconFade for every item centre, reusing dst's
// storage when it is large enough.
func MapIconVisuals(dst []IconVisual, troughCenterX float64, itemCenters []float64, itemAreaWidth, baseHeight float64) []IconVisual {
	if cap(dst) < len(itemCenters) {
		dst = make([]IconVisual, len(itemCenters))
	}
	dst = dst[:len(itemCenters)]
	for i, cx := range itemCenters {
		dst[i] = IconFade(troughCenterX, cx, itemAreaWidth, baseHeight)
	}
	return dst
}

// ActionGlyphX returns the left edge of the action glyph riding the trough.
func ActionGlyphX(troughCenterX, iconSize float64) float64 {
	return troughCenterX - iconSize/2
}
